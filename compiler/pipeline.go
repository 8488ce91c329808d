// Package compiler assembles query operators into pipelines for code
// generation.
package compiler

// Parallelism describes how a pipeline step may be executed.
type Parallelism int

const (
	// Serial steps run on a single thread.
	Serial Parallelism = iota
	// Parallel steps may be distributed across worker threads.
	Parallel
)

func (p Parallelism) String() string {
	switch p {
	case Serial:
		return "serial"
	case Parallel:
		return "parallel"
	}
	panic("impossible")
}

// An OperatorTranslator generates code for one relational operator.
// Translators are registered on a pipeline in plan order and consumed
// in reverse, so the producing operator is translated last.
type OperatorTranslator interface {
	// Name identifies the operator in traces and diagnostics.
	Name() string
}

type step struct {
	translator  OperatorTranslator
	parallelism Parallelism
}

// A Pipeline is an ordered chain of operator translators that feed
// one another tuple-at-a-time. Steps are added root-first and drained
// leaf-first.
type Pipeline struct {
	id    int
	steps []step
}

// NewPipeline returns an empty pipeline with the given identifier.
func NewPipeline(id int) *Pipeline {
	return &Pipeline{id: id}
}

// ID returns the pipeline's identifier.
func (p *Pipeline) ID() int { return p.id }

// Add appends a translator to the pipeline along with its execution
// mode. The mode is recorded for the scheduler but does not affect
// the order steps are returned.
func (p *Pipeline) Add(t OperatorTranslator, parallelism Parallelism) {
	p.steps = append(p.steps, step{translator: t, parallelism: parallelism})
}

// NumSteps returns the number of registered steps.
func (p *Pipeline) NumSteps() int { return len(p.steps) }

// ParallelismAt returns the execution mode recorded for step i.
func (p *Pipeline) ParallelismAt(i int) Parallelism {
	return p.steps[i].parallelism
}

// NextStep removes and returns the most recently added translator,
// or nil when the pipeline is empty. Draining a pipeline therefore
// yields the steps in reverse of the order they were added.
func (p *Pipeline) NextStep() OperatorTranslator {
	if len(p.steps) == 0 {
		return nil
	}
	last := p.steps[len(p.steps)-1]
	p.steps = p.steps[:len(p.steps)-1]
	return last.translator
}
