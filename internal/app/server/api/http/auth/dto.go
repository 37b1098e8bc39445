package auth

import "net/http"

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Password string `json:"password" doc:"Admin password"`
}

type loginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      okResponse
}

type logoutInput struct {
	Session string `cookie:"sess" required:"false"`
}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      okResponse
}

type okResponse struct {
	OK bool `json:"ok"`
}
