// Command epstl-demo exercises the three core packages end to end: an
// ordered map, a point quadtree, and a staged pipeline fed through the
// global worker pool.
package main

import (
	"fmt"
	"time"

	"github.com/baxromumarov/epstl/orderedmap"
	"github.com/baxromumarov/epstl/pipeline"
	"github.com/baxromumarov/epstl/quadtree"
	"github.com/baxromumarov/epstl/workerpool"
)

func demoOrderedMap() {
	m := orderedmap.NewOrdered[int, int]()
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20} {
		m.Insert(k, k*10)
	}
	fmt.Printf("orderedmap: size=%d height=%d\n", m.Size(), m.Height())

	it := m.Iterator()
	for it.Next() {
		fmt.Printf("  %d -> %d\n", it.Key(), it.Value())
	}
}

func demoQuadtree() {
	t := quadtree.NewComparable(0, 0, 20, 20, "")
	t.Insert(5, 5, "a")
	t.Insert(3, 3, "b")

	x, y, ok := t.Find("b", func(a, b string) bool { return a == b })
	fmt.Printf("quadtree: at(5,5)=%q find(b)=(%v,%v,%v)\n", t.At(5, 5), x, y, ok)
}

func demoPipeline() {
	p := pipeline.New()
	p.AddStage(pipeline.StageFunc(func(in any) (any, error) {
		time.Sleep(10 * time.Millisecond)
		return in.(int) + 1, nil
	}))
	p.AddStage(pipeline.StageFunc(func(in any) (any, error) {
		time.Sleep(20 * time.Millisecond)
		return in.(int) * 2, nil
	}))

	pool := workerpool.Global()
	now := time.Now()
	for i := 0; i < 4; i++ {
		i := i
		pool.Submit(func() { p.Feed(i) })
	}
	pool.JoinAll()
	p.WaitEnd()

	fmt.Printf("pipeline: stages=%d elapsed=%s\n", p.StageCount(), time.Since(now))
}

func main() {
	demoOrderedMap()
	demoQuadtree()
	demoPipeline()
}
