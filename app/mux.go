package main

import (
	"errors"
	"strings"

	"github.com/astaxie/beego/logs"
)

// HandlerFunc 路由处理函数类型
// 返回的 error 由 Mux 统一转换成响应，处理函数自己不需要拼错误报文
type HandlerFunc func(req *Request) (*Response, error)

type route struct {
	pattern string
	prefix  bool // true: 前缀匹配；false: 精确匹配
	handler HandlerFunc
}

func (rt route) match(path string) bool {
	if rt.prefix {
		return strings.HasPrefix(path, rt.pattern)
	}
	return path == rt.pattern
}

// Mux 有序的路由表，每条路由是精确匹配或前缀匹配
// 按注册顺序依次尝试，第一个命中的生效，都不命中时返回 404
type Mux struct {
	routes []route
	log    *logs.BeeLogger
}

// NewMux 创建一个新的路由器
func NewMux(log *logs.BeeLogger) *Mux {
	return &Mux{log: log}
}

// Handle 注册精确匹配的路由，例如 "/"
func (m *Mux) Handle(pattern string, handler HandlerFunc) {
	m.routes = append(m.routes, route{pattern: pattern, handler: handler})
}

// HandlePrefix 注册前缀匹配的路由，例如 "/echo"、"/files/"
func (m *Mux) HandlePrefix(prefix string, handler HandlerFunc) {
	m.routes = append(m.routes, route{pattern: prefix, prefix: true, handler: handler})
}

// Serve 根据 req.Path 分发到对应的 Handler
// 如果没有匹配的路由，则返回 404；处理函数返回的错误转换为 400 / 404
func (m *Mux) Serve(req *Request) *Response {
	for _, rt := range m.routes {
		if !rt.match(req.Path) {
			continue
		}
		resp, err := rt.handler(req)
		if err != nil {
			m.log.Debug("%s %s: %v", req.Method, req.Path, err)
			return errorResponse(err)
		}
		return resp
	}

	// 默认 404
	m.log.Debug("%s %s: no route", req.Method, req.Path)
	return NewResponse(StatusNotFound)
}

// errorResponse 把错误映射为响应
func errorResponse(err error) *Response {
	switch {
	case errors.Is(err, ErrMalformedRequest), errors.Is(err, ErrMissingHeader):
		return NewResponse(StatusBadRequest)
	default:
		// ErrResourceNotFound、ErrUnconfiguredRoute 以及其它未分类的错误
		return NewResponse(StatusNotFound)
	}
}
