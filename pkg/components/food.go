package components

// FoodComponent 标记实体为食物（唐扬）
type FoodComponent struct {
	// IsBeingEaten 已交给角色进食，等待被移除
	IsBeingEaten bool
}
