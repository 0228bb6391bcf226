package model

// Project 项目
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	MemberIDs   []string `json:"member_ids" yaml:"member_ids"`
}

// Clone 深拷贝
func (p Project) Clone() Project {
	p.MemberIDs = cloneIDs(p.MemberIDs)
	return p
}

// Team 团队，与任务无直接关联，通过成员的指派关系间接统计
type Team struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	MemberIDs   []string `json:"member_ids" yaml:"member_ids"`
}

// Clone 深拷贝
func (t Team) Clone() Team {
	t.MemberIDs = cloneIDs(t.MemberIDs)
	return t
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
