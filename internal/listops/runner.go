package listops

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/stackbook/naivelist/pkg/list"
	"github.com/stackbook/naivelist/pkg/logger"
)

const (
	popResultValue = "value"
	popResultEmpty = "empty"
)

var (
	pushCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "naivelist_push_total",
		Help: "The total number of values pushed onto a list.",
	})

	popCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "naivelist_pop_total",
		Help: "The total number of pops, partitioned by whether a value was present.",
	}, []string{"result"})

	releasedNodesCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "naivelist_released_nodes_total",
		Help: "The total number of nodes released by dropping a list.",
	})
)

// Result is the outcome of applying one Op.
type Result struct {
	Op Op

	// Value and Present hold the element produced by pop or peek, or the length for len.
	Value   int32
	Present bool

	// Len is the list length after the operation.
	Len int

	// Released is the number of nodes released by drop.
	Released int
}

func (r Result) String() string {
	switch r.Op.Kind {
	case OpPush:
		return fmt.Sprintf("push %d", r.Op.Value)
	case OpPop, OpPeek:
		if !r.Present {
			return fmt.Sprintf("%s -> none", r.Op.Kind)
		}
		return fmt.Sprintf("%s -> %d", r.Op.Kind, r.Value)
	case OpLen:
		return fmt.Sprintf("len -> %d", r.Len)
	case OpDrop:
		return fmt.Sprintf("drop -> released %d", r.Released)
	default:
		return r.Op.String()
	}
}

type RunnerOpt func(*Runner)

// WithLogger sets the logger used to trace every applied operation.
func WithLogger(logger logger.Logger) RunnerOpt {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithList makes the runner operate on an existing list instead of a fresh one.
func WithList(l *list.List) RunnerOpt {
	return func(r *Runner) {
		r.list = l
	}
}

// Runner applies operations to the list it owns. It is not safe for concurrent use.
type Runner struct {
	list   *list.List
	logger logger.Logger
}

func NewRunner(opts ...RunnerOpt) *Runner {
	r := &Runner{
		logger: logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.list == nil {
		r.list = list.New()
	}

	return r
}

func (r *Runner) Apply(op Op) Result {
	res := Result{Op: op}

	switch op.Kind {
	case OpPush:
		r.list.Push(op.Value)
		pushCounter.Inc()
	case OpPop:
		res.Value, res.Present = r.list.Pop()
		if res.Present {
			popCounter.WithLabelValues(popResultValue).Inc()
		} else {
			popCounter.WithLabelValues(popResultEmpty).Inc()
		}
	case OpPeek:
		res.Value, res.Present = r.list.Peek()
	case OpLen:
		res.Value, res.Present = int32(r.list.Len()), true
	case OpDrop:
		res.Released = r.list.Drop()
		releasedNodesCounter.Add(float64(res.Released))
	}
	res.Len = r.list.Len()

	r.logger.Debug("applied list operation",
		zap.Stringer("op", op),
		zap.Bool("present", res.Present),
		zap.Int32("value", res.Value),
		zap.Int("len", res.Len),
	)

	return res
}

func (r *Runner) Run(ops []Op) []Result {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		results = append(results, r.Apply(op))
	}
	return results
}

// Close drops whatever is left on the list and returns the number of released nodes.
func (r *Runner) Close() int {
	released := r.Apply(Op{Kind: OpDrop}).Released
	if released > 0 {
		r.logger.Info("released remaining nodes", zap.Int("released", released))
	}
	return released
}
