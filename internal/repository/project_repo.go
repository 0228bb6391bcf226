package repository

import (
	"github.com/samber/lo"

	"taskboard/internal/model"
	"taskboard/internal/pkg/idgen"
	"taskboard/pkg/constants"
	pkgErrors "taskboard/pkg/errors"
)

// ProjectRepository 项目仓储，项目目前不支持删除
type ProjectRepository interface {
	Create(project *model.Project) error
	FindByID(id string) (*model.Project, error)
	Exists(id string) bool
	List() []model.Project
}

type projectRepository struct {
	store *Store
}

func NewProjectRepository(store *Store) ProjectRepository {
	return &projectRepository{store: store}
}

func (r *projectRepository) Create(project *model.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if project.ID == "" {
		project.ID = idgen.New(constants.IDPrefixProject)
	} else if r.indexLocked(project.ID) >= 0 {
		return pkgErrors.Wrap(pkgErrors.CodeConflict, "项目已存在", nil)
	}
	if project.MemberIDs == nil {
		project.MemberIDs = []string{}
	}

	r.store.projects = prepend(r.store.projects, project.Clone())
	return nil
}

func (r *projectRepository) FindByID(id string) (*model.Project, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, pkgErrors.ErrRecordNotFound
	}
	project := r.store.projects[idx].Clone()
	return &project, nil
}

func (r *projectRepository) Exists(id string) bool {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.indexLocked(id) >= 0
}

func (r *projectRepository) List() []model.Project {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.projectsLocked()
}

func (r *projectRepository) indexLocked(id string) int {
	_, idx, _ := lo.FindIndexOf(r.store.projects, func(p model.Project) bool {
		return p.ID == id
	})
	return idx
}
