package worker

// Task is a unit of background work, typically a Kafka publish or a
// notification fan-out queued from a request handler.
type Task func()

// WorkerPool runs a fixed set of goroutines draining a shared task queue.
// The queue is unbuffered, so Submit blocks until a worker picks the task up.
type WorkerPool struct {
	taskQueue chan Task
	stop      chan struct{}
}

// NewWorkerPool starts numWorkers goroutines and returns the pool.
func NewWorkerPool(numWorkers int) *WorkerPool {
	pool := &WorkerPool{
		taskQueue: make(chan Task),
		stop:      make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		go pool.run()
	}

	return pool
}

func (p *WorkerPool) run() {
	for {
		select {
		case task := <-p.taskQueue:
			task()
		case <-p.stop:
			return
		}
	}
}

// Submit hands a task to the next free worker.
func (p *WorkerPool) Submit(task Task) {
	p.taskQueue <- task
}

// Stop signals every worker to exit after its current task.
func (p *WorkerPool) Stop() {
	close(p.stop)
}
