package repository

import (
	"github.com/samber/lo"

	"taskboard/internal/model"
	"taskboard/internal/pkg/idgen"
	"taskboard/pkg/constants"
	pkgErrors "taskboard/pkg/errors"
)

type TeamRepository interface {
	Create(team *model.Team) error
	FindByID(id string) (*model.Team, error)
	List() []model.Team
	Update(team *model.Team) error
	// Delete 删除团队，任务只关联用户，无需级联
	Delete(id string) error
}

type teamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) TeamRepository {
	return &teamRepository{store: store}
}

func (r *teamRepository) Create(team *model.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if team.ID == "" {
		team.ID = idgen.New(constants.IDPrefixTeam)
	} else if r.indexLocked(team.ID) >= 0 {
		return pkgErrors.Wrap(pkgErrors.CodeConflict, "团队已存在", nil)
	}
	if team.MemberIDs == nil {
		team.MemberIDs = []string{}
	}

	r.store.teams = prepend(r.store.teams, team.Clone())
	return nil
}

func (r *teamRepository) FindByID(id string) (*model.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, pkgErrors.ErrRecordNotFound
	}
	team := r.store.teams[idx].Clone()
	return &team, nil
}

func (r *teamRepository) List() []model.Team {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.teamsLocked()
}

func (r *teamRepository) Update(team *model.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.indexLocked(team.ID)
	if idx < 0 {
		return pkgErrors.ErrRecordNotFound
	}
	if team.MemberIDs == nil {
		team.MemberIDs = []string{}
	}
	r.store.teams[idx] = team.Clone()
	return nil
}

func (r *teamRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return pkgErrors.ErrRecordNotFound
	}
	r.store.teams = append(r.store.teams[:idx:idx], r.store.teams[idx+1:]...)
	return nil
}

func (r *teamRepository) indexLocked(id string) int {
	_, idx, _ := lo.FindIndexOf(r.store.teams, func(t model.Team) bool {
		return t.ID == id
	})
	return idx
}
