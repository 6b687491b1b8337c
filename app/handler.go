package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	echoSep  = "/echo/"
	filesSep = "/files/"
)

// registerRoutes 注册所有路由到 Mux，注册顺序就是匹配优先级
func registerRoutes(m *Mux, baseDir string) {
	// 根路径 "/"
	m.Handle("/", rootHandler)
	// /echo*
	m.HandlePrefix("/echo", echoHandler)
	// /user-agent*
	m.HandlePrefix("/user-agent", userAgentHandler)
	// /files/*
	m.HandlePrefix(filesSep, filesHandler(baseDir))
}

// 根路径 Handler：返回 200 OK，无 body
func rootHandler(req *Request) (*Response, error) {
	return NewResponse(StatusOK), nil
}

// /echo/<text> Handler
// 取最后一个 "/echo/" 之后的内容；路径里没有 "/echo/"（比如 "/echo"）时回显空串
func echoHandler(req *Request) (*Response, error) {
	var str string
	if i := strings.LastIndex(req.Path, echoSep); i >= 0 {
		str = req.Path[i+len(echoSep):]
	}
	return textResponse("text/plain", str), nil
}

// /user-agent Handler
func userAgentHandler(req *Request) (*Response, error) {
	userAgent, ok := req.Header("User-Agent")
	if !ok {
		return nil, fmt.Errorf("%w: User-Agent", ErrMissingHeader)
	}
	return textResponse("text/plain", userAgent), nil
}

// /files/* Handler，baseDir 为空表示没有配置 --directory
func filesHandler(baseDir string) HandlerFunc {
	return func(req *Request) (*Response, error) {
		if baseDir == "" {
			return nil, fmt.Errorf("%w: %s", ErrUnconfiguredRoute, filesSep)
		}
		fileName := strings.TrimPrefix(req.Path, filesSep)

		filePath, err := resolvePath(baseDir, fileName)
		if err != nil {
			return nil, err
		}
		// 读文件，目录或者读不出来的文件都按 404 处理
		info, err := os.Stat(filePath)
		if err != nil || info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, fileName)
		}
		contentBytes, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrResourceNotFound, fileName, err)
		}
		return textResponse("application/octet-stream", string(contentBytes)), nil
	}
}

// resolvePath 把 fileName 拼到 baseDir 下，不允许通过 ".." 跳出 baseDir
func resolvePath(baseDir, fileName string) (string, error) {
	filePath := filepath.Join(baseDir, fileName)
	rel, err := filepath.Rel(baseDir, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s escapes %s", ErrResourceNotFound, fileName, baseDir)
	}
	return filePath, nil
}

// textResponse 200 + Content-Type + Content-Length（字节数）+ body
func textResponse(contentType, body string) *Response {
	return NewResponse(StatusOK).
		AddHeader("Content-Type", contentType).
		AddHeader("Content-Length", strconv.Itoa(len(body))).
		SetBody(body)
}
