/*
Package ports defines the driven ports (interfaces) for the Solid course engine.

These interfaces decouple the course logic from external implementations,
allowing the engine to work with various lesson sources, progress backends and
presentation surfaces.

# Key Interfaces

  - Catalog: Responsible for loading Lesson definitions (e.g., from the
    embedded set or a directory on disk).
  - ProgressStore: Responsible for persisting and loading reader Progress.
  - Renderer: Responsible for turning lesson Markdown into displayable text.

The package also ships reusable contract suites (RunProgressStoreContract,
RunCatalogContract) that every adapter implementation is expected to pass.
*/
package ports
