package roller

// Observer is notified of every transition, including the ones that never
// surface as afterMove because the queue was not empty.
type Observer interface {
	MoveQueued(req MoveRequest, depth int)
	MoveStarted(req MoveRequest, flow Flow)
	MoveFinished(req MoveRequest, flow Flow)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) MoveQueued(MoveRequest, int)    {}
func (NopObserver) MoveStarted(MoveRequest, Flow)  {}
func (NopObserver) MoveFinished(MoveRequest, Flow) {}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) MoveQueued(req MoveRequest, depth int) {
	for _, o := range m {
		o.MoveQueued(req, depth)
	}
}

func (m MultiObserver) MoveStarted(req MoveRequest, flow Flow) {
	for _, o := range m {
		o.MoveStarted(req, flow)
	}
}

func (m MultiObserver) MoveFinished(req MoveRequest, flow Flow) {
	for _, o := range m {
		o.MoveFinished(req, flow)
	}
}
