package scheduling

import (
	"courseplatform/services/management-service/internal/dbtime"
	"courseplatform/services/management-service/internal/domain"
)

// Result — разбиение пачки кандидатов на принятые и отклонённые.
// Каждый кандидат попадает ровно в одну из двух частей, порядок входа сохраняется.
type Result struct {
	Valid      []domain.ScheduleCandidate
	Conflicted []domain.RejectedSchedule
}

type interval struct {
	start dbtime.TimeOfDay
	end   dbtime.TimeOfDay
}

// Resolve проверяет пачку кандидатов друг против друга, без внешнего состояния.
// Кандидаты обрабатываются в порядке поступления: кто раньше пришёл, тот занял слот.
// Конфликт считается только между интервалами с одинаковой датой начала;
// пересечение многодневных интервалов по разным датам начала не проверяется.
func Resolve(candidates []domain.ScheduleCandidate) Result {
	res := Result{
		Valid:      make([]domain.ScheduleCandidate, 0, len(candidates)),
		Conflicted: make([]domain.RejectedSchedule, 0),
	}

	// Занятые интервалы по дате начала, только в рамках этого вызова.
	occupied := make(map[string][]interval)

	for _, cand := range candidates {
		if cand.EndDate.Before(cand.StartDate) {
			res.Conflicted = append(res.Conflicted, domain.RejectedSchedule{
				ScheduleCandidate: cand,
				Reason:            domain.ReasonInvalidDateRange,
			})
			continue
		}

		day := cand.StartDate.Key()

		conflict := false
		for _, taken := range occupied[day] {
			// Пересечение открытых интервалов: стык "конец == начало" конфликтом не считается.
			if cand.StartTime.Before(taken.end) && cand.EndTime.After(taken.start) {
				conflict = true
				break
			}
		}

		if conflict {
			res.Conflicted = append(res.Conflicted, domain.RejectedSchedule{
				ScheduleCandidate: cand,
				Reason:            domain.ReasonTimeConflict,
			})
			continue
		}

		res.Valid = append(res.Valid, cand)
		occupied[day] = append(occupied[day], interval{start: cand.StartTime, end: cand.EndTime})
	}

	return res
}
