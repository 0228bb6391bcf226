package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// IDParam 路径中的ID
type IDParam struct {
	ID string `uri:"id" binding:"required"`
}

// IDQuery 查询参数中的ID
type IDQuery struct {
	ID string `form:"id" binding:"required"`
}

// TaskQuery 任务列表的搜索、筛选、排序条件
type TaskQuery struct {
	Search   string `form:"search"`
	Assignee string `form:"assignee"` // 用户ID或 all
	Project  string `form:"project"`  // 项目ID或 all
	Sort     string `form:"sort" binding:"omitempty,oneof=deadline priority title"`
}

// CalendarQuery 日历视图请求，年月缺省为当月
type CalendarQuery struct {
	Year   int    `form:"year" binding:"omitempty,min=1,max=9999"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
	Search string `form:"search"`
}

// ListResponse 列表响应
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int         `json:"total"`
}

// Hours 工时输入: 接受数字或数字字符串, 无法解析或为负时记为0
type Hours float64

func (h *Hours) UnmarshalJSON(data []byte) error {
	*h = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	*h = Hours(v)
	return nil
}

// Float64 转换为float64
func (h Hours) Float64() float64 {
	return float64(h)
}
