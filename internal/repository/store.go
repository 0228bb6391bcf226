package repository

import (
	"sync"

	"github.com/samber/lo"

	"taskboard/internal/model"
)

// Snapshot 某一时刻全部集合的只读副本
type Snapshot struct {
	Users         []model.User         `yaml:"users"`
	Projects      []model.Project      `yaml:"projects"`
	Teams         []model.Team         `yaml:"teams"`
	Tasks         []model.Task         `yaml:"tasks"`
	Notifications []model.Notification `yaml:"notifications"`
}

// Store 内存数据源，唯一的状态来源
// 所有集合共用一把锁，跨集合的级联修改在一次加锁内完成
type Store struct {
	mu            sync.RWMutex
	users         []model.User
	projects      []model.Project
	teams         []model.Team
	tasks         []model.Task
	notifications []model.Notification
}

// NewStore 创建空的数据源
func NewStore() *Store {
	return &Store{}
}

// Load 用快照整体替换当前数据
func (s *Store) Load(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append([]model.User(nil), snap.Users...)
	s.projects = lo.Map(snap.Projects, func(p model.Project, _ int) model.Project { return p.Clone() })
	s.teams = lo.Map(snap.Teams, func(t model.Team, _ int) model.Team { return t.Clone() })
	s.tasks = lo.Map(snap.Tasks, func(t model.Task, _ int) model.Task { return t.Clone() })
	s.notifications = append([]model.Notification(nil), snap.Notifications...)
}

// Snapshot 获取一致性快照，供统计和视图计算使用
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Users:         s.usersLocked(),
		Projects:      s.projectsLocked(),
		Teams:         s.teamsLocked(),
		Tasks:         s.tasksLocked(),
		Notifications: append([]model.Notification{}, s.notifications...),
	}
}

func (s *Store) usersLocked() []model.User {
	return append([]model.User{}, s.users...)
}

func (s *Store) projectsLocked() []model.Project {
	return lo.Map(s.projects, func(p model.Project, _ int) model.Project { return p.Clone() })
}

func (s *Store) teamsLocked() []model.Team {
	return lo.Map(s.teams, func(t model.Team, _ int) model.Team { return t.Clone() })
}

func (s *Store) tasksLocked() []model.Task {
	return lo.Map(s.tasks, func(t model.Task, _ int) model.Task { return t.Clone() })
}

// prepend 新记录插入到最前面
func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}
