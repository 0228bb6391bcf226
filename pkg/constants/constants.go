package constants

// 过滤器取值
const (
	FilterAll = "all"
)

// 排序字段
const (
	SortByDeadline = "deadline"
	SortByPriority = "priority"
	SortByTitle    = "title"
)

// ID 前缀
const (
	IDPrefixTask         = "t_"
	IDPrefixProject      = "p_"
	IDPrefixTeam         = "team_"
	IDPrefixUser         = "u_"
	IDPrefixNotification = "n_"
	IDPrefixConfirmation = "cf_"
)

// 日期格式
const (
	DateLayout = "2006-01-02"
)

// JWT 相关
const (
	JWTTypeAccess = "access"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// gin context keys
const (
	ContextKeyUserID = "user_id"
)
