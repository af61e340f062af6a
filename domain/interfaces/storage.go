package interfaces

// Storage persists browser session artefacts between runs
type Storage interface {
	// SaveState saves the browser session state (cookies, local storage)
	SaveState(state map[string]interface{}) error

	// LoadState loads the browser session state; a missing state is empty, not an error
	LoadState() (map[string]interface{}, error)

	// SaveScreenshot writes a PNG and returns the path it was written to
	SaveScreenshot(name string, png []byte) (string, error)
}
