// Command fixtopics shortens and capitalizes question topics and sorts the
// question bank by topic.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aliskhannn/srs-flashcards-bot/internal/repository"
)

func main() {
	path := pflag.StringP("questions", "q", "questions.json", "path to the question bank JSON")
	pflag.Parse()

	lg, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	topics, err := repository.NormalizeQuestionFile(context.Background(), *path)
	if err != nil {
		lg.Fatal("failed to normalize topics", zap.String("path", *path), zap.Error(err))
	}

	fmt.Println("✅ Темы сокращены до одного слова и отсортированы по алфавиту.")
	fmt.Println()
	fmt.Println("📚 Список тем:")
	for _, t := range topics {
		fmt.Println(" -", t)
	}
}
