package game

const (
	ErrorCycleClosed         = "physics cycle used after Close()"
	ErrorCycleDoubleClose    = "physics cycle closed twice"
	ErrorContactBufferClosed = "contact buffer used after Close()"
	ErrorContactBufferDouble = "contact buffer closed twice"
	ErrorMeshDisposed        = "kicker %d: collision mesh used after Dispose()"
	ErrorMeshDoubleDispose   = "kicker %d: collision mesh disposed twice"
	ErrorBallIndexOutOfRange = "ball index %d out of range, only %d balls simulated"
	ErrorTableClosed         = "table %q ticked after Close()"
	ErrorTableDoubleClose    = "table %q closed twice"
	ErrorDuplicateItemID     = "duplicate item id %d (%s)"
)
