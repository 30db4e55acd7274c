package domain

// ScreenState is the per-screen lifecycle published alongside every view.
//
// Uninitialized -> Loading -> Ready, Ready -> Loading on explicit refetch,
// Loading -> Error on a failed fetch. An Error state keeps the previous Ready
// view available (stale-but-available); the orders screen additionally blanks
// its list while Loading.
type ScreenState string

const (
	ScreenUninitialized ScreenState = "uninitialized"
	ScreenLoading       ScreenState = "loading"
	ScreenReady         ScreenState = "ready"
	ScreenError         ScreenState = "error"
)
