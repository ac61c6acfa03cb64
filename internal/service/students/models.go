package students

// RegisterRequest - запрос регистрации студента
type RegisterRequest struct {
	Name    string
	Email   string
	IsAdmin bool
}

// Student - студент в ответе сервиса
type Student struct {
	ID      int64
	Name    string
	Email   string
	IsAdmin bool
}
