package errors

import "fmt"

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrTokenNotFound        = fmt.Errorf("токен не найден")
	ErrTokenIsNotRefresh    = fmt.Errorf("токен не является refresh-токеном")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Аутентификация и авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")
	ErrAccountLocked      = fmt.Errorf("аккаунт временно заблокирован")
	ErrUnknownRole        = fmt.Errorf("неизвестная роль пользователя")

	// Контекст
	ErrUserNotFoundInContext = fmt.Errorf("пользователь не найден в контексте запроса")

	// Общие
	ErrNotFound          = fmt.Errorf("запись не найдена")
	ErrUserNotFound      = fmt.Errorf("пользователь не найден")
	ErrEquipmentNotFound = fmt.Errorf("оборудование не найдено")
	ErrRequestNotFound   = fmt.Errorf("заявка не найдена")
	ErrBadRequest        = fmt.Errorf("неверный запрос")
	ErrUsernameTaken     = fmt.Errorf("имя пользователя уже занято")

	// Бизнес-правила жизненного цикла заявок
	ErrDuplicateRequest  = fmt.Errorf("такая заявка уже существует")
	ErrInvalidTransition = fmt.Errorf("недопустимый переход статуса заявки")
)

// InvalidInputError — ошибка валидации входных данных (4xx, исправимая пользователем).
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError несет код ответа и сообщение для клиента; Err и Context — для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: ctx,
	}
}
