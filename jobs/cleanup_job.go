package jobs

import (
	"log"
	"time"

	"github.com/kipkoech44/study_quiz/models"
	"gorm.io/gorm"
)

// CleanupEmptyQuestions removes questions that still have no answers an
// hour after creation. The bulk create inserts the question first and the
// answers independently, so a failed run can leave a question with nothing
// attached; those are unusable in a quiz and get swept here.
func CleanupEmptyQuestions(db *gorm.DB) {
	log.Println("Running job: CleanupEmptyQuestions...")

	cutoff := time.Now().Add(-1 * time.Hour)

	result := db.
		Where("created_at < ?", cutoff).
		Where("id NOT IN (?)", db.Model(&models.Answer{}).Distinct("question_id")).
		Delete(&models.Question{})
	if result.Error != nil {
		log.Printf("Error cleaning up empty questions: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("No empty questions found.")
		return
	}
	log.Printf("Deleted %d answerless question(s).", result.RowsAffected)
}
