// Package schemas embeds the JSON Schemas for the documents the CLI and HTTP API accept.
package schemas

import "embed"

// Schema file names
const (
	QuizAnswers      = "quiz_answers.schema.json"
	NutritionRequest = "nutrition_request.schema.json"
	MovementScores   = "movement_scores.schema.json"
	TrainingPlan     = "training_plan.schema.json"
	DatingResult     = "dating_result.schema.json"
)

// All lists every embedded schema.
var All = []string{QuizAnswers, NutritionRequest, MovementScores, TrainingPlan, DatingResult}

//go:embed *.schema.json
var files embed.FS

// Read returns the raw content of an embedded schema.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}
