package constants

// 订单状态
const (
	OrderStatusPending    = "pending"    // 待处理
	OrderStatusProcessing = "processing" // 处理中
	OrderStatusShipped    = "shipped"    // 已发货
	OrderStatusDelivered  = "delivered"  // 已送达
	OrderStatusCancelled  = "cancelled"  // 已取消
)

// 支付方式
const (
	PaymentMethodCOD          = "cod"           // 货到付款
	PaymentMethodBankTransfer = "bank_transfer" // 银行转账
	PaymentMethodEWallet      = "e_wallet"      // 电子钱包
)

// 支付状态
const (
	PaymentStatusPending = "pending" // 待支付
	PaymentStatusPaid    = "paid"    // 已支付
	PaymentStatusFailed  = "failed"  // 支付失败
)

// 用户状态
const (
	UserStatusActive   = "active"   // 正常
	UserStatusDisabled = "disabled" // 禁用
)

// 登录日志状态
const (
	LoginLogStatusSuccess = "success" // 登录成功
	LoginLogStatusFailed  = "failed"  // 登录失败
)

// 登录失败原因
const (
	LoginFailReasonNotFound     = "user_not_found"   // 用户不存在
	LoginFailReasonBadPassword  = "invalid_password" // 密码错误
	LoginFailReasonUserDisabled = "user_disabled"    // 用户被禁用
	LoginFailReasonRateLimited  = "rate_limited"     // 触发限流
)

// ValidPaymentMethod 校验支付方式取值
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCOD, PaymentMethodBankTransfer, PaymentMethodEWallet:
		return true
	}
	return false
}

// ValidOrderStatus 校验订单状态取值
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
