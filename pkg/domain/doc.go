/*
Package domain contains the core domain models for the Solid course engine.

It defines the fundamental entities of the field guide, such as Principles,
Lessons, Quizzes and reader Progress. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Principle: One of the five SOLID design principles (S, O, L, I, D).
  - Lesson: A single Markdown write-up, optionally closed by a Quiz.
  - Quiz: A short multiple-choice check attached to a lesson.
  - Progress: The runtime snapshot of a reader's journey through the course.
*/
package domain
