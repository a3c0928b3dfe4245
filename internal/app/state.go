package app

import (
	"sort"

	"homework_status_bot/internal/domain/homework"
)

type seenSet map[string]struct{}

func (s seenSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s seenSet) add(key string) { s[key] = struct{}{} }

func (s seenSet) clear() {
	for k := range s {
		delete(s, k)
	}
}

func (s seenSet) sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// State is the dedup memory of the poll loop: statuses and error messages that
// were already announced since the last reset.
type State struct {
	answers seenSet
	errors  seenSet
}

func NewState() *State {
	return &State{answers: seenSet{}, errors: seenSet{}}
}

// SeenAnswers returns the announced statuses in sorted order.
func (s *State) SeenAnswers() []string { return s.answers.sorted() }

// SeenErrors returns the announced error messages in sorted order.
func (s *State) SeenErrors() []string { return s.errors.sorted() }

// resetStatuses are the statuses that restart dedup tracking. rejected is
// deliberately absent.
var resetStatuses = map[string]bool{
	homework.StatusApproved:  true,
	homework.StatusReviewing: true,
}

// resetOnStatus is the one place where a status transition touches error
// dedup: approved and reviewing forget both answers and errors, then keep
// status so an unchanged repeat is still suppressed.
func resetOnStatus(st *State, status string) bool {
	if !resetStatuses[status] {
		return false
	}
	st.answers.clear()
	st.errors.clear()
	st.answers.add(status)
	return true
}
