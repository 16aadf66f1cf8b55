package lessons

import (
	"context"

	"lld/internal/domain/model"
	"lld/internal/patterns/strategy"
)

func strategyLesson() lesson {
	return lesson{
		info: model.Lesson{
			Key:     "strategy",
			Title:   "Robots with swappable behaviors",
			Pattern: "Strategy",
			Summary: "Robots delegate walking, talking and flying to behavior objects that can be replaced at runtime.",
		},
		run: func(_ context.Context, p *printer) error {
			robots := []*strategy.Robot{
				strategy.NewCompanionRobot("Buddy"),
				strategy.NewWorkerRobot("Atlas"),
			}
			for _, r := range robots {
				p.line("%s: %s, %s, %s; %s", r.Name(), r.Walk(), r.Talk(), r.Fly(), r.Projection())
			}

			atlas := robots[1]
			atlas.SetFly(strategy.JetFly{})
			atlas.SetTalk(strategy.NormalTalk{})
			p.line("after upgrade %s: %s, %s", atlas.Name(), atlas.Talk(), atlas.Fly())

			values := []int{42, 7, 19, 3, 88, 1}
			sorter := strategy.NewSorter(strategy.BubbleSort{})
			for _, s := range []strategy.SortStrategy{strategy.BubbleSort{}, strategy.MergeSort{}, strategy.QuickSort{}} {
				sorter.SetStrategy(s)
				p.line("%s sort %v -> %v", sorter.Strategy(), values, sorter.Sort(values))
			}
			return nil
		},
	}
}
