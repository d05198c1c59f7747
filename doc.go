/*
Package solid is an interactive field guide to the five SOLID design
principles, written for Go developers.

It pairs Markdown lessons (embedded in the binary) with compilable example
packages under principles/, and tracks a reader's progress through the course.
The package separates content (Catalog), state (ProgressStore) and
presentation (Renderer), so the same course can be driven from a CLI, an HTTP
server, or an MCP agent. That separation is itself the Dependency Inversion
lesson in action.

# Usage

Initialize a course with the default embedded lessons and walk it:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/lsobral/solid"
	)

	func main() {
		course, err := solid.New()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()

		// Resume wherever the reader left off.
		lesson, err := course.Next(ctx, "ana")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(lesson.Title)
		fmt.Println(string(lesson.Content))

		// Lessons without a quiz complete explicitly...
		if !lesson.HasQuiz() {
			if err := course.Complete(ctx, "ana", lesson.ID); err != nil {
				log.Fatal(err)
			}
			return
		}

		// ...lessons with a quiz complete by passing it.
		score, err := course.SubmitQuiz(ctx, "ana", lesson.ID, []int{1, 0})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d/%d\n", score.Correct, score.Total)
	}
*/
package solid
