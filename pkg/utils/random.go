package utils

import (
	"math/rand"
	"time"
)

// RandomSource 可注入的随机数来源
// *rand.Rand 直接满足该接口；测试中使用 FixedRandomSource 得到确定的延迟
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// NewRandomSource 创建以 seed 为种子的随机数来源
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// DefaultRandomSource 以当前时间为种子
func DefaultRandomSource() RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}

// RandomDuration 返回 [min, max) 内均匀分布的随机时长
// max <= min 时返回 min
func RandomDuration(r RandomSource, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(r.Float64()*float64(max-min))
}

// RandomIntInclusive 返回 [min, max] 内均匀分布的随机整数
// max <= min 时返回 min
func RandomIntInclusive(r RandomSource, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// FixedRandomSource 固定输出的随机数来源
// Float 应在 [0, 1) 内；Intn 返回 Int 对 n 取模的结果
type FixedRandomSource struct {
	Float float64
	Int   int
}

// Float64 返回固定值
func (f FixedRandomSource) Float64() float64 {
	return f.Float
}

// Intn 返回 Int mod n
func (f FixedRandomSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := f.Int % n
	if v < 0 {
		v += n
	}
	return v
}

// FractionFor 计算让 RandomDuration(min, max) 返回 target 所需的 Float 值
// 用于在测试中注入固定延迟
func FractionFor(target, min, max time.Duration) float64 {
	if max <= min {
		return 0
	}
	return float64(target-min) / float64(max-min)
}
