package idgen

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
	defaultSize = 12
)

// New 生成带前缀的随机ID
func New(prefix string) string {
	return prefix + gonanoid.MustGenerate(alphabet, defaultSize)
}
