package seed

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// DefaultAvatars 未提供种子文件时的头像可选项
var DefaultAvatars = []string{
	"https://api.dicebear.com/8.x/micah/svg?seed=Abby&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Angel&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Bandit&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Bella&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Callie&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Chester&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Coco&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Cookie&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Dusty&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Garfield&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=George&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Jack&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Lilly&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Lucy&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Max&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
	"https://api.dicebear.com/8.x/micah/svg?seed=Milo&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
}

// Seed 启动时加载的初始数据
type Seed struct {
	Avatars             []string `yaml:"avatars"`
	repository.Snapshot `yaml:",inline"`
}

// Load 读取种子文件; path为空时返回只含默认头像的空数据
func Load(path string) (*Seed, error) {
	if path == "" {
		return &Seed{Avatars: DefaultAvatars}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取种子文件失败: %w", err)
	}
	return Parse(data)
}

// Parse 解析yaml格式的种子数据
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("解析种子文件失败: %w", err)
	}
	if len(s.Avatars) == 0 {
		s.Avatars = DefaultAvatars
	}
	for i := range s.Projects {
		if s.Projects[i].MemberIDs == nil {
			s.Projects[i].MemberIDs = []string{}
		}
	}
	for i := range s.Teams {
		if s.Teams[i].MemberIDs == nil {
			s.Teams[i].MemberIDs = []string{}
		}
	}
	if err := Validate(&s.Snapshot); err != nil {
		return nil, fmt.Errorf("种子数据不合法: %w", err)
	}
	return &s, nil
}

// Validate 检查种子数据的引用完整性: ID唯一, 枚举合法, 负责人/项目/成员都指向已有记录
func Validate(snap *repository.Snapshot) error {
	users, err := indexIDs("用户", lo.Map(snap.Users, func(u model.User, _ int) string { return u.ID }))
	if err != nil {
		return err
	}
	projects, err := indexIDs("项目", lo.Map(snap.Projects, func(p model.Project, _ int) string { return p.ID }))
	if err != nil {
		return err
	}
	if _, err := indexIDs("团队", lo.Map(snap.Teams, func(t model.Team, _ int) string { return t.ID })); err != nil {
		return err
	}
	if _, err := indexIDs("任务", lo.Map(snap.Tasks, func(t model.Task, _ int) string { return t.ID })); err != nil {
		return err
	}
	if _, err := indexIDs("通知", lo.Map(snap.Notifications, func(n model.Notification, _ int) string { return n.ID })); err != nil {
		return err
	}

	for _, p := range snap.Projects {
		if err := checkMembers("项目", p.ID, p.MemberIDs, users); err != nil {
			return err
		}
	}
	for _, t := range snap.Teams {
		if err := checkMembers("团队", t.ID, t.MemberIDs, users); err != nil {
			return err
		}
	}

	for _, task := range snap.Tasks {
		switch {
		case !task.Status.Valid():
			return fmt.Errorf("任务 %s: 状态 %q 不合法", task.ID, task.Status)
		case !task.Priority.Valid():
			return fmt.Errorf("任务 %s: 优先级 %q 不合法", task.ID, task.Priority)
		case task.Deadline.IsZero():
			return fmt.Errorf("任务 %s: 缺少截止日期", task.ID)
		case task.TimeLogged < 0 || task.EstimatedTime < 0:
			return fmt.Errorf("任务 %s: 工时不能为负数", task.ID)
		case !projects[task.ProjectID]:
			return fmt.Errorf("任务 %s: 项目 %q 不存在", task.ID, task.ProjectID)
		case task.AssigneeID != nil && !users[*task.AssigneeID]:
			return fmt.Errorf("任务 %s: 负责人 %q 不存在", task.ID, *task.AssigneeID)
		}
	}
	return nil
}

func indexIDs(kind string, ids []string) (map[string]bool, error) {
	index := make(map[string]bool, len(ids))
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("第%d个%s缺少id", i+1, kind)
		}
		if index[id] {
			return nil, fmt.Errorf("%s id %q 重复", kind, id)
		}
		index[id] = true
	}
	return index, nil
}

func checkMembers(kind, id string, memberIDs []string, users map[string]bool) error {
	for _, memberID := range memberIDs {
		if !users[memberID] {
			return fmt.Errorf("%s %s: 成员 %q 不存在", kind, id, memberID)
		}
	}
	return nil
}
