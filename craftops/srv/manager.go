package srv

import (
	"sync"
	"time"
)

// Servers ...
var servers sync.Map

// Register ...
func Register(serv *Server) {
	servers.Store(serv.Config().Name, serv)
}

// Reset removes all registered servers.
func Reset() {
	servers.Range(func(key, _ any) bool {
		servers.Delete(key)
		return true
	})
}

// CheckAll probes every registered server concurrently and returns
// once all checks finished.
func CheckAll(timeout time.Duration) {
	var wg sync.WaitGroup
	servers.Range(func(_, value any) bool {
		if s, ok := value.(*Server); ok {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Check(timeout)
			}()
		}
		return true
	})
	wg.Wait()
}

// FromName ...
func FromName(name string) *Server {
	if serv, ok := servers.Load(name); ok {
		return serv.(*Server)
	}
	return nil
}

// All ...
func All() map[string]*Server {
	result := make(map[string]*Server)
	servers.Range(func(key, value any) bool {
		result[key.(string)] = value.(*Server)
		return true
	})
	return result
}
