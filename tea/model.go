package tea

// modelConstraint is the Elm Architecture contract: Init produces the
// first command, Update folds a Msg into the next model state plus an
// optional follow-up command, View renders the current state.
//
// It isn't exported as a named interface because Go doesn't allow a
// type alias for a generic interface that refers to its own type
// parameter — this is the teacher's own documented workaround for that
// limitation, kept as-is since the limitation still applies.
type modelConstraint[T any] interface {
	Init() Cmd
	Update(Msg) (T, Cmd)
	View() string
}
