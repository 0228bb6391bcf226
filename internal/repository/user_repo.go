package repository

import (
	"github.com/samber/lo"

	"taskboard/internal/model"
	"taskboard/internal/pkg/idgen"
	"taskboard/pkg/constants"
	pkgErrors "taskboard/pkg/errors"
)

type UserRepository interface {
	// Create 新建用户，返回创建前集合是否为空（即是否为第一个用户）
	Create(user *model.User) (bool, error)
	FindByID(id string) (*model.User, error)
	// First 集合中排在最前面的用户
	First() (*model.User, error)
	Exists(id string) bool
	List() []model.User
	Update(user *model.User) error
	// DeleteByIDs 批量删除用户并级联：任务取消指派、项目和团队移除成员
	DeleteByIDs(ids []string) (*CascadeResult, error)
}

// CascadeResult 级联删除的影响范围
type CascadeResult struct {
	UsersRemoved     int `json:"users_removed"`
	TasksUnassigned  int `json:"tasks_unassigned"`
	ProjectsAffected int `json:"projects_affected"`
	TeamsAffected    int `json:"teams_affected"`
}

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(user *model.User) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user.ID == "" {
		user.ID = idgen.New(constants.IDPrefixUser)
	} else if r.indexLocked(user.ID) >= 0 {
		return false, pkgErrors.Wrap(pkgErrors.CodeConflict, "用户已存在", nil)
	}

	first := len(r.store.users) == 0
	r.store.users = prepend(r.store.users, *user)
	return first, nil
}

func (r *userRepository) FindByID(id string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx := r.indexLocked(id)
	if idx < 0 {
		return nil, pkgErrors.ErrRecordNotFound
	}
	user := r.store.users[idx]
	return &user, nil
}

func (r *userRepository) First() (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if len(r.store.users) == 0 {
		return nil, pkgErrors.ErrNoUsers
	}
	user := r.store.users[0]
	return &user, nil
}

func (r *userRepository) Exists(id string) bool {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.indexLocked(id) >= 0
}

func (r *userRepository) List() []model.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.usersLocked()
}

func (r *userRepository) Update(user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := r.indexLocked(user.ID)
	if idx < 0 {
		return pkgErrors.ErrRecordNotFound
	}
	r.store.users[idx] = *user
	return nil
}

func (r *userRepository) DeleteByIDs(ids []string) (*CascadeResult, error) {
	result := &CascadeResult{}
	if len(ids) == 0 {
		return result, nil
	}
	removed := lo.SliceToMap(ids, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
	isRemoved := func(id string) bool {
		_, ok := removed[id]
		return ok
	}

	// 整个级联在一次写锁内完成，外部观察不到中间状态
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	before := len(r.store.users)
	r.store.users = lo.Reject(r.store.users, func(u model.User, _ int) bool {
		return isRemoved(u.ID)
	})
	result.UsersRemoved = before - len(r.store.users)

	for i := range r.store.tasks {
		task := &r.store.tasks[i]
		if task.AssigneeID != nil && isRemoved(*task.AssigneeID) {
			task.AssigneeID = nil
			result.TasksUnassigned++
		}
	}

	for i := range r.store.projects {
		project := &r.store.projects[i]
		pruned := lo.Reject(project.MemberIDs, func(id string, _ int) bool { return isRemoved(id) })
		if len(pruned) != len(project.MemberIDs) {
			result.ProjectsAffected++
		}
		project.MemberIDs = pruned
	}

	for i := range r.store.teams {
		team := &r.store.teams[i]
		pruned := lo.Reject(team.MemberIDs, func(id string, _ int) bool { return isRemoved(id) })
		if len(pruned) != len(team.MemberIDs) {
			result.TeamsAffected++
		}
		team.MemberIDs = pruned
	}

	return result, nil
}

func (r *userRepository) indexLocked(id string) int {
	_, idx, _ := lo.FindIndexOf(r.store.users, func(u model.User) bool {
		return u.ID == id
	})
	return idx
}
