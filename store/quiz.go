package store

import (
	"fmt"

	"github.com/kipkoech44/study_quiz/models"
	"github.com/kipkoech44/study_quiz/utils"
)

// AnswerInput is one proposed answer for CreateQuestionWithAnswers.
type AnswerInput struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionWithAnswers pairs a question with its answers. Answers is always
// non-nil, even for a question nothing was ever attached to.
type QuestionWithAnswers struct {
	Question models.Question `json:"question"`
	Answers  []models.Answer `json:"answers"`
}

// CreateQuestionResult reports the outcome of the bulk create. Answers that
// failed to insert show up in AnswerErrors; the rest were committed.
type CreateQuestionResult struct {
	Question     models.Question `json:"question"`
	Answers      []models.Answer `json:"answers"`
	AnswerErrors []string        `json:"answerErrors"`
}

// QuestionsWithAnswers loads all questions and all answers in two queries
// and groups the answers by question id.
func (s *Store) QuestionsWithAnswers() ([]QuestionWithAnswers, error) {
	var questions []models.Question
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}

	var answers []models.Answer
	if err := s.db.Order("id").Find(&answers).Error; err != nil {
		return nil, err
	}

	byQuestion := make(map[uint][]models.Answer, len(questions))
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = append(byQuestion[answer.QuestionID], answer)
	}

	result := make([]QuestionWithAnswers, 0, len(questions))
	for _, question := range questions {
		grouped := byQuestion[question.ID]
		if grouped == nil {
			grouped = []models.Answer{}
		}
		result = append(result, QuestionWithAnswers{Question: question, Answers: grouped})
	}
	return result, nil
}

// CreateQuestionWithAnswers inserts the question first; if that fails the
// whole operation fails and no answers are attempted. Each answer is then
// inserted independently and failures are collected rather than aborting
// the loop, so a bad answer never rolls back its siblings.
func (s *Store) CreateQuestionWithAnswers(text string, answers []AnswerInput) (*CreateQuestionResult, error) {
	if check := utils.NotNullOrEmptyString(text); !check.Valid {
		return nil, fmt.Errorf("question text invalid due to: %s", check.Reason)
	}

	question := models.Question{Text: text}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, fmt.Errorf("encountered %q when trying to create the question", err.Error())
	}

	result := &CreateQuestionResult{
		Question:     question,
		Answers:      []models.Answer{},
		AnswerErrors: []string{},
	}
	for i, input := range answers {
		if check := utils.NotNullOrEmptyString(input.Text); !check.Valid {
			result.AnswerErrors = append(result.AnswerErrors,
				fmt.Sprintf("answer #%d invalid due to: %s", i, check.Reason))
			continue
		}

		answer := models.Answer{
			Text:       input.Text,
			QuestionID: question.ID,
			IsCorrect:  input.IsCorrect,
		}
		if err := s.db.Create(&answer).Error; err != nil {
			result.AnswerErrors = append(result.AnswerErrors,
				fmt.Sprintf("encountered an error with answer #%d: %s", i, err.Error()))
			continue
		}
		result.Answers = append(result.Answers, answer)
	}
	return result, nil
}
