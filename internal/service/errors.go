package service

import "errors"

// ErrSessionActive is returned by Complete when the interview has not yet
// reached its final step. Completion is driven by the turn loop; Complete
// only verifies and re-reports the terminal state.
var ErrSessionActive = errors.New("session is still active")
