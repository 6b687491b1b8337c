package main

import (
	"bytes"
	"fmt"
	"strings"
)

// CRLF 请求行、请求头以及响应各部分之间的分隔符
const CRLF = "\r\n"

// 请求头 name 与 value 之间的分隔符
const headerSep = ": "

// Request 由 ParseRequest 在每个连接上构造一次，之后只读
// Headers 的键区分大小写，同名只保留最后一次出现的值
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
}

// Header 按名字精确匹配（区分大小写）查找请求头
func (r *Request) Header(name string) (string, bool) {
	v, ok := r.Headers[name]
	return v, ok
}

// ParseRequest 把一次读到的原始字节解析成 Request
// 固定大小缓冲区末尾的 NUL 填充会被丢弃；只解析请求行和请求头，遇到空行即停止
func ParseRequest(raw []byte) (*Request, error) {
	raw = bytes.TrimRight(raw, "\x00")
	lines := strings.Split(string(raw), CRLF)

	// 请求行：METHOD SP PATH [SP VERSION]
	parts := strings.Split(lines[0], " ")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: invalid request line %q", ErrMalformedRequest, lines[0])
	}

	req := &Request{
		Method:  parts[0],
		Path:    parts[1],
		Headers: make(map[string]string),
	}

	// 读取请求头
	for _, line := range lines[1:] {
		// 读到尾
		if line == "" {
			break
		}
		// 按第一个 ": " 分成两部分：key 和 value，没有分隔符的行直接跳过
		key, value, ok := strings.Cut(line, headerSep)
		if !ok {
			continue
		}
		req.Headers[key] = value // 重复的请求头以最后一次为准
	}
	return req, nil
}
