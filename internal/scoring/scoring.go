// Package scoring implements the marking scheme for completed attempts:
// +4 for a correct answer, -1 for an attempted wrong answer, 0 for an
// unattempted question. The net score is signed and is stored as-is.
package scoring

const (
	// PointsPerCorrect and PenaltyPerWrong define the fixed marking scheme.
	PointsPerCorrect = 4
	PenaltyPerWrong  = 1
)

// Breakdown is the outcome of grading one answer sheet.
type Breakdown struct {
	Score       int
	Correct     int
	Incorrect   int
	Unattempted int
}

// MaxScore is the highest score attainable on a test of n questions.
func MaxScore(totalQuestions int) int {
	return PointsPerCorrect * totalQuestions
}

// Grade marks a sparse answer sheet against the authoritative key.
// Positions run over [0, totalQuestions); answers for positions outside that
// range are ignored, and an answer pointing at a non-existent option index is
// simply wrong (client input is not validated against option bounds, it just
// can never match the key).
func Grade(answers map[int]int, key map[int]int, totalQuestions int) Breakdown {
	var b Breakdown
	for i := 0; i < totalQuestions; i++ {
		selected, attempted := answers[i]
		if !attempted {
			b.Unattempted++
			continue
		}
		correct, hasKey := key[i]
		if hasKey && selected == correct {
			b.Correct++
			b.Score += PointsPerCorrect
		} else {
			b.Incorrect++
			b.Score -= PenaltyPerWrong
		}
	}
	return b
}
