package session

// Screen identifies one discrete interaction mode of the session.
// Every consumer switches exhaustively over these values, so adding a
// screen is a compile-time-checked change everywhere it is handled.
type Screen int

const (
	// ScreenLoading waits for the user to trigger the catalog load.
	ScreenLoading Screen = iota

	// ScreenNewOwner collects an owner name during first-run setup.
	ScreenNewOwner

	// ScreenHome shows the full catalog.
	ScreenHome

	// ScreenSearching collects a field-scoped search query.
	ScreenSearching

	// ScreenCheckingOut shows the selected book and awaits checkout
	// confirmation. The session never enters this screen without a
	// selected book.
	ScreenCheckingOut

	// ScreenCheckedOutResult displays the outcome of the last
	// checkout attempt.
	ScreenCheckedOutResult

	// ScreenExiting asks the user to confirm quitting.
	ScreenExiting
)

// String returns a short name for the screen, used in logs.
func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenNewOwner:
		return "new-owner"
	case ScreenHome:
		return "home"
	case ScreenSearching:
		return "searching"
	case ScreenCheckingOut:
		return "checking-out"
	case ScreenCheckedOutResult:
		return "checked-out-result"
	case ScreenExiting:
		return "exiting"
	default:
		return "unknown"
	}
}
