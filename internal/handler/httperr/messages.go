package httperr

import (
	"net/http"

	"elearning-storefront/internal/domain/auth"
	"elearning-storefront/internal/domain/coupon"
	"elearning-storefront/internal/domain/order"
	"elearning-storefront/internal/domain/upload"
	"elearning-storefront/internal/domain/user"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/password"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"
)

// Mapping is what the client sees for one error.
type Mapping struct {
	Status  int
	Message string
	Code    string
}

type entry struct {
	err     error
	message string
	code    string
}

// Checked in order; the first sentinel found in the chain wins, so specific
// reasons come before the errors that wrap them.
var entries = []entry{
	{upload.ErrEmptyFile, "กรุณาเลือกไฟล์", "FILE_EMPTY"},
	{upload.ErrInvalidFileType, "ประเภทไฟล์ไม่ถูกต้อง", "INVALID_FILE_TYPE"},
	{upload.ErrFileTooLarge, "ขนาดไฟล์เกินกำหนด", "FILE_TOO_LARGE"},
	{commands.ErrUploadFailed, "เกิดข้อผิดพลาดในการอัพโหลดไฟล์", "UPLOAD_FAILED"},

	{coupon.ErrExpired, "คูปองหมดอายุหรือยังไม่เริ่มใช้งาน", "COUPON_EXPIRED"},
	{coupon.ErrLimitReached, "คูปองถูกใช้ครบจำนวนแล้ว", "COUPON_LIMIT_REACHED"},
	{coupon.ErrNotApplicable, "คูปองนี้ใช้กับสินค้าประเภทนี้ไม่ได้", "COUPON_NOT_APPLICABLE"},
	{coupon.ErrNotFound, "คูปองไม่ถูกต้อง", "COUPON_NOT_FOUND"},
	{coupon.ErrInvalidTotal, "ยอดรวมไม่ถูกต้อง", "INVALID_SUBTOTAL"},
	{commands.ErrCouponInvalid, "คูปองไม่ถูกต้อง", "COUPON_INVALID"},

	{queries.ErrCourseNotFound, "ไม่พบคอร์ส", "COURSE_NOT_FOUND"},
	{queries.ErrEbookNotFound, "ไม่พบหนังสือ", "EBOOK_NOT_FOUND"},
	{queries.ErrExamNotFound, "ไม่พบข้อสอบที่ระบุ", "EXAM_NOT_FOUND"},
	{queries.ErrItemNotFound, "ไม่มีข้อมูลสินค้า", "ITEM_NOT_FOUND"},
	{commands.ErrOrderItemNotFound, "ไม่มีข้อมูลสินค้า", "ITEM_NOT_FOUND"},
	{queries.ErrInvalidCategoryKind, "ประเภทหมวดหมู่ไม่ถูกต้อง", "INVALID_CATEGORY_KIND"},

	{queries.ErrOrderNotFound, "ไม่พบคำสั่งซื้อ", "ORDER_NOT_FOUND"},
	{queries.ErrOrderAccess, "ไม่มีสิทธิ์เข้าถึงคำสั่งซื้อนี้", "ORDER_FORBIDDEN"},
	{order.ErrInvalidShipping, "กรุณากรอกที่อยู่จัดส่งให้ครบถ้วน", "INVALID_SHIPPING"},
	{commands.ErrInvalidOrderInput, "ข้อมูลคำสั่งซื้อไม่ถูกต้อง", "INVALID_ORDER"},
	{commands.ErrSlipNotAccepted, "คำสั่งซื้อนี้ไม่สามารถแนบสลิปได้", "SLIP_NOT_ACCEPTED"},
	{commands.ErrPaymentNotFound, "ไม่พบรายการชำระเงิน", "PAYMENT_NOT_FOUND"},
	{commands.ErrPaymentTransition, "ไม่สามารถเปลี่ยนสถานะการชำระเงินได้", "INVALID_PAYMENT_TRANSITION"},
	{commands.ErrReviewRequiresRole, "Forbidden", "FORBIDDEN"},
	{commands.ErrExamUploadRequiresRole, "Forbidden", "FORBIDDEN"},

	{auth.ErrPasswordMismatch, "รหัสผ่านไม่ตรงกัน", "PASSWORD_MISMATCH"},
	{user.ErrPasswordTooWeak, "รหัสผ่านต้องมีอย่างน้อย 8 ตัวอักษร", "PASSWORD_TOO_WEAK"},
	{password.ErrTooLong, "รหัสผ่านยาวเกินไป", "PASSWORD_TOO_LONG"},
	{user.ErrInvalidEmail, "รูปแบบอีเมลไม่ถูกต้อง", "INVALID_EMAIL"},
	{user.ErrInvalidName, "กรุณากรอกชื่อ", "INVALID_NAME"},
	{commands.ErrInvalidRegistration, "สมัครสมาชิกไม่สำเร็จ", "INVALID_REGISTRATION"},
	{commands.ErrEmailTaken, "อีเมลนี้ถูกใช้งานแล้ว", "EMAIL_TAKEN"},
	{commands.ErrInvalidCredentials, "อีเมลหรือรหัสผ่านไม่ถูกต้อง", "INVALID_CREDENTIALS"},
	{commands.ErrAccountInactive, "บัญชีนี้ถูกระงับการใช้งาน", "ACCOUNT_INACTIVE"},
	{commands.ErrSocialLoginDisabled, "ไม่รองรับการเข้าสู่ระบบด้วย Google", "SOCIAL_LOGIN_DISABLED"},
	{commands.ErrSocialEmailUnverified, "อีเมลของบัญชี Google ยังไม่ได้ยืนยัน", "SOCIAL_EMAIL_UNVERIFIED"},
	{commands.ErrSocialLoginFailed, "เข้าสู่ระบบด้วย Google ไม่สำเร็จ", "SOCIAL_LOGIN_FAILED"},
	{queries.ErrUserNotFound, "ไม่พบผู้ใช้", "USER_NOT_FOUND"},
	{queries.ErrUserInactive, "บัญชีนี้ถูกระงับการใช้งาน", "ACCOUNT_INACTIVE"},
}

var classFallback = map[error]Mapping{
	errs.ErrNotFound:     {http.StatusNotFound, "ไม่พบข้อมูล", "NOT_FOUND"},
	errs.ErrValidation:   {http.StatusBadRequest, "ข้อมูลไม่ถูกต้อง", "VALIDATION_FAILED"},
	errs.ErrUnauthorized: {http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED"},
	errs.ErrForbidden:    {http.StatusForbidden, "Forbidden", "FORBIDDEN"},
	errs.ErrConflict:     {http.StatusConflict, "ไม่สามารถดำเนินการได้", "CONFLICT"},
	errs.ErrUpstream:     {http.StatusBadGateway, "บริการภายนอกขัดข้อง กรุณาลองใหม่", "UPSTREAM_FAILURE"},
	errs.ErrInternal:     {http.StatusInternalServerError, "เกิดข้อผิดพลาด กรุณาลองใหม่", "INTERNAL_ERROR"},
}

// Lookup resolves err to a status from its taxonomy class and a message from
// the most specific sentinel it carries. Unclassified errors never leak their text.
func Lookup(err error) Mapping {
	m := classFallback[errs.Class(err)]
	if m.Status == http.StatusInternalServerError {
		return m
	}
	for _, e := range entries {
		if errs.Is(err, e.err) {
			m.Message = e.message
			m.Code = e.code
			break
		}
	}
	return m
}
