package dto

// ErrorResponse cuerpo de error HTTP.
// Code es una etiqueta estable para la máquina; Message es texto corto para
// el operador. Nunca se expone un string interno de excepción crudo.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
