package main

import "errors"

// 请求处理过程中的错误分类，由 Mux 统一转换为 400 / 404 响应
var (
	// ErrMalformedRequest 请求行或请求头无法按约定切分
	ErrMalformedRequest = errors.New("malformed request")
	// ErrMissingHeader 路由依赖的请求头不存在
	ErrMissingHeader = errors.New("missing required header")
	// ErrResourceNotFound /files/ 路由找不到（或读不出）目标文件
	ErrResourceNotFound = errors.New("resource not found")
	// ErrUnconfiguredRoute /files/ 路由在没有配置 --directory 时被访问
	ErrUnconfiguredRoute = errors.New("route not configured")
)
