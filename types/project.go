package types

import (
	"strconv"
	"time"
)

// FindPhase locates a phase by identifier first, falling back to an exact
// title match. Returns nil when neither strategy hits.
func (p *Project) FindPhase(phaseID, title string) *Phase {
	if phaseID != "" {
		for i := range p.Phases {
			if p.Phases[i].PhaseID == phaseID {
				return &p.Phases[i]
			}
		}
	}
	if title != "" {
		for i := range p.Phases {
			if p.Phases[i].Title == title {
				return &p.Phases[i]
			}
		}
	}
	return nil
}

func (p *Project) AddPhase(phase Phase) {
	if phase.Status == "" {
		phase.Status = PHASE_STATUS_PENDING
	}
	p.Phases = append(p.Phases, phase)
}

// RemovePhase filters out the phase matching by identifier or title. An
// unchanged length is the not-found signal, reported as false.
func (p *Project) RemovePhase(phaseID, title string) bool {
	kept := p.Phases[:0]
	for _, phase := range p.Phases {
		if phaseID != "" && phase.PhaseID == phaseID {
			continue
		}
		if phaseID == "" && title != "" && phase.Title == title {
			continue
		}
		kept = append(kept, phase)
	}
	if len(kept) == len(p.Phases) {
		return false
	}
	p.Phases = kept
	return true
}

// FindSubtask returns the owning phase and the subtask for an identifier,
// scanning every phase. Only one subtask per project may carry an id; the
// first match wins.
func (p *Project) FindSubtask(subtaskID string) (*Phase, *Subtask) {
	for i := range p.Phases {
		for j := range p.Phases[i].Subtasks {
			if p.Phases[i].Subtasks[j].SubtaskID == subtaskID {
				return &p.Phases[i], &p.Phases[i].Subtasks[j]
			}
		}
	}
	return nil, nil
}

// NextSubtaskID derives a subtask identifier from the phase id and the
// subtask's position. Positions are not re-packed on deletion, so ids are
// stable only while nothing is removed from the middle of the list.
func (ph *Phase) NextSubtaskID() string {
	return ph.PhaseID + "-" + strconv.Itoa(len(ph.Subtasks)+1)
}

// ImageURLs collects every stored image reference across all phases and
// subtasks, for cleanup on permanent deletion.
func (p *Project) ImageURLs() []string {
	var urls []string
	for _, phase := range p.Phases {
		for _, st := range phase.Subtasks {
			urls = append(urls, st.Images...)
		}
	}
	return urls
}

// SoftDelete marks the project deleted and stamps the moment it became
// eligible for reaping.
func (p *Project) SoftDelete(now time.Time) {
	p.ProjectStatus = PROJECT_STATUS_DELETED
	p.DeletedAt = &now
}
