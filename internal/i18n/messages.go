package i18n

// 消息 key
const (
	MsgSuccess              = "common.success"
	MsgBadRequest           = "common.bad_request"
	MsgUnauthorized         = "common.unauthorized"
	MsgInternalError        = "common.internal_error"
	MsgTooManyRequests      = "common.too_many_requests"
	MsgRegisterSuccess      = "auth.register_success"
	MsgLoginSuccess         = "auth.login_success"
	MsgLogoutSuccess        = "auth.logout_success"
	MsgInvalidCredentials   = "auth.invalid_credentials"
	MsgEmailTaken           = "auth.email_taken"
	MsgUsernameTaken        = "auth.username_taken"
	MsgWeakPassword         = "auth.weak_password"
	MsgUserDisabled         = "auth.user_disabled"
	MsgProfileUpdated       = "user.profile_updated"
	MsgAccountDeleted       = "user.account_deleted"
	MsgProductNotFound      = "product.not_found"
	MsgProductUnavailable   = "product.unavailable"
	MsgCartItemAdded        = "cart.item_added"
	MsgCartItemUpdated      = "cart.item_updated"
	MsgCartItemRemoved      = "cart.item_removed"
	MsgCartItemNotFound     = "cart.item_not_found"
	MsgCartEmpty            = "cart.empty"
	MsgInsufficientStock    = "cart.insufficient_stock"
	MsgInvalidQuantity      = "cart.invalid_quantity"
	MsgCheckoutSuccess      = "order.checkout_success"
	MsgInvalidPaymentMethod = "order.invalid_payment_method"
	MsgOrderNotFound        = "order.not_found"
)

// messages 各语言文案
var messages = map[string]map[string]string{
	LocaleVI: {
		MsgSuccess:              "Thành công",
		MsgBadRequest:           "Dữ liệu không hợp lệ",
		MsgUnauthorized:         "Vui lòng đăng nhập",
		MsgInternalError:        "Lỗi hệ thống, vui lòng thử lại sau",
		MsgTooManyRequests:      "Thao tác quá nhanh, vui lòng thử lại sau",
		MsgRegisterSuccess:      "Đăng ký thành công",
		MsgLoginSuccess:         "Đăng nhập thành công",
		MsgLogoutSuccess:        "Đăng xuất thành công",
		MsgInvalidCredentials:   "Email hoặc mật khẩu không đúng",
		MsgEmailTaken:           "Email đã được sử dụng",
		MsgUsernameTaken:        "Tên đăng nhập đã được sử dụng",
		MsgWeakPassword:         "Mật khẩu không đủ mạnh",
		MsgUserDisabled:         "Tài khoản đã bị khóa",
		MsgProfileUpdated:       "Cập nhật thông tin thành công",
		MsgAccountDeleted:       "Xóa tài khoản thành công",
		MsgProductNotFound:      "Sản phẩm không tồn tại",
		MsgProductUnavailable:   "Sản phẩm hiện không khả dụng",
		MsgCartItemAdded:        "Sản phẩm đã được thêm vào giỏ hàng",
		MsgCartItemUpdated:      "Cập nhật giỏ hàng thành công",
		MsgCartItemRemoved:      "Sản phẩm đã được xóa khỏi giỏ hàng",
		MsgCartItemNotFound:     "Sản phẩm không có trong giỏ hàng",
		MsgCartEmpty:            "Giỏ hàng trống",
		MsgInsufficientStock:    "Sản phẩm không đủ số lượng trong kho",
		MsgInvalidQuantity:      "Số lượng không hợp lệ",
		MsgCheckoutSuccess:      "Đặt hàng thành công",
		MsgInvalidPaymentMethod: "Phương thức thanh toán không hợp lệ",
		MsgOrderNotFound:        "Đơn hàng không tồn tại",
	},
	LocaleEN: {
		MsgSuccess:              "Success",
		MsgBadRequest:           "Invalid request data",
		MsgUnauthorized:         "Please sign in",
		MsgInternalError:        "Internal error, please try again later",
		MsgTooManyRequests:      "Too many requests, please slow down",
		MsgRegisterSuccess:      "Registered successfully",
		MsgLoginSuccess:         "Signed in successfully",
		MsgLogoutSuccess:        "Signed out successfully",
		MsgInvalidCredentials:   "Incorrect email or password",
		MsgEmailTaken:           "Email is already in use",
		MsgUsernameTaken:        "Username is already in use",
		MsgWeakPassword:         "Password is too weak",
		MsgUserDisabled:         "Account has been disabled",
		MsgProfileUpdated:       "Profile updated",
		MsgAccountDeleted:       "Account deleted",
		MsgProductNotFound:      "Product not found",
		MsgProductUnavailable:   "Product is currently unavailable",
		MsgCartItemAdded:        "Product added to cart",
		MsgCartItemUpdated:      "Cart updated",
		MsgCartItemRemoved:      "Product removed from cart",
		MsgCartItemNotFound:     "Product is not in your cart",
		MsgCartEmpty:            "Cart is empty",
		MsgInsufficientStock:    "Not enough stock for this product",
		MsgInvalidQuantity:      "Invalid quantity",
		MsgCheckoutSuccess:      "Order placed successfully",
		MsgInvalidPaymentMethod: "Invalid payment method",
		MsgOrderNotFound:        "Order not found",
	},
	LocaleZH: {
		MsgSuccess:              "操作成功",
		MsgBadRequest:           "请求数据不合法",
		MsgUnauthorized:         "请先登录",
		MsgInternalError:        "系统错误，请稍后重试",
		MsgTooManyRequests:      "操作过于频繁，请稍后重试",
		MsgRegisterSuccess:      "注册成功",
		MsgLoginSuccess:         "登录成功",
		MsgLogoutSuccess:        "退出登录成功",
		MsgInvalidCredentials:   "邮箱或密码错误",
		MsgEmailTaken:           "邮箱已被使用",
		MsgUsernameTaken:        "用户名已被使用",
		MsgWeakPassword:         "密码强度不足",
		MsgUserDisabled:         "账号已被禁用",
		MsgProfileUpdated:       "资料更新成功",
		MsgAccountDeleted:       "账号删除成功",
		MsgProductNotFound:      "商品不存在",
		MsgProductUnavailable:   "商品当前不可用",
		MsgCartItemAdded:        "商品已加入购物车",
		MsgCartItemUpdated:      "购物车更新成功",
		MsgCartItemRemoved:      "商品已从购物车移除",
		MsgCartItemNotFound:     "购物车中没有该商品",
		MsgCartEmpty:            "购物车为空",
		MsgInsufficientStock:    "商品库存不足",
		MsgInvalidQuantity:      "数量不合法",
		MsgCheckoutSuccess:      "下单成功",
		MsgInvalidPaymentMethod: "支付方式不合法",
		MsgOrderNotFound:        "订单不存在",
	},
}
