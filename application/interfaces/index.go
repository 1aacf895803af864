package interfaces

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApplicationContext carries everything a controller needs about the request
// that triggered it. Body is typed per route.
type ApplicationContext[T any] struct {
	Ctx       *gin.Context
	Body      *T
	Keys      map[string]any
	Header    http.Header
	Param     map[string]any
	Query     map[string]any
	DeviceID  string
	UserAgent string
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) SetContextData(key string, value any) {
	if ac.Keys == nil {
		ac.Keys = map[string]any{}
	}
	ac.Keys[key] = value
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	value, ok := ac.GetContextData(key).(string)
	if !ok {
		return ""
	}
	return value
}

func (ac *ApplicationContext[T]) GetStringSliceContextData(key string) []string {
	value, ok := ac.GetContextData(key).([]string)
	if !ok {
		return nil
	}
	return value
}

func (ac *ApplicationContext[T]) GetHeader(key string) *string {
	value := ac.Header.Get(key)
	return &value
}

func (ac *ApplicationContext[T]) GetStringParameter(key string) string {
	value, ok := ac.Param[key].(string)
	if !ok {
		return ""
	}
	return value
}
