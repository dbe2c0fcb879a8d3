package mutation

// Kind: mutasyon sonuçları için sabit ayrıştırıcı. İstemci toast rengini
// mesaj metnine bakarak değil, bu alana bakarak seçer.
type Kind string

const (
	KindSuccess         Kind = "success"
	KindValidationError Kind = "validation_error"
	KindNotFound        Kind = "not_found"
	KindIOError         Kind = "io_error"
)

type Result struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Success(msg string) Result {
	return Result{Kind: KindSuccess, Message: msg}
}

func ValidationError(msg string) Result {
	return Result{Kind: KindValidationError, Message: msg}
}

func NotFound(msg string) Result {
	return Result{Kind: KindNotFound, Message: msg}
}

func IOError(msg string) Result {
	return Result{Kind: KindIOError, Message: msg}
}

// OK: başarı mı? İstemci tarafındaki kısa yol.
func (r Result) OK() bool {
	return r.Kind == KindSuccess
}
