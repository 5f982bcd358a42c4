package simulator

// Monitor observes a run. OnGameComplete is called from worker goroutines
// and must be safe for concurrent use.
type Monitor interface {
	OnStrategyStart(name string, games int)
	OnGameComplete(name string, game, total int)
	OnStrategyComplete(result StrategyResult)
}

// NopMonitor ignores every event.
type NopMonitor struct{}

func (NopMonitor) OnStrategyStart(string, int) {}
func (NopMonitor) OnGameComplete(string, int, int) {}
func (NopMonitor) OnStrategyComplete(StrategyResult) {}
