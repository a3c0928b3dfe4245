package homework

// Review statuses reported by the homework API.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

// Verdicts maps a review status to the text shown to the student.
type Verdicts map[string]string

// DefaultVerdicts returns a fresh copy of the verdict table used in production.
func DefaultVerdicts() Verdicts {
	return Verdicts{
		StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
		StatusReviewing: "Работа взята на проверку ревьюером.",
		StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
	}
}

// Lookup returns the verdict for status and whether the status is known.
func (v Verdicts) Lookup(status string) (string, bool) {
	verdict, ok := v[status]
	return verdict, ok
}
