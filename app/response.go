package main

import (
	"sort"
	"strings"
)

// Status 响应状态码
type Status int

const (
	StatusOK         Status = 200
	StatusBadRequest Status = 400
	StatusNotFound   Status = 404
)

// 非 200 的状态码只输出固定的最小报文，忽略 headers 和 body
var fixedFrames = map[Status]string{
	StatusBadRequest: "HTTP/1.1 400 BAD REQUEST" + CRLF + CRLF,
	StatusNotFound:   "HTTP/1.1 404 NOT FOUND" + CRLF + CRLF,
}

const statusLineOK = "HTTP/1.1 200 OK" + CRLF

// Response 由路由处理函数构造，交给 Format 序列化一次后丢弃
type Response struct {
	Status  Status
	Headers map[string]string

	body    string
	hasBody bool // 区分“没有 body”与“空 body”
}

// NewResponse 创建一个没有 body 的响应
func NewResponse(status Status) *Response {
	return &Response{
		Status:  status,
		Headers: make(map[string]string),
	}
}

// AddHeader 设置响应头，同名覆盖
func (r *Response) AddHeader(key, value string) *Response {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// SetBody 设置 body（可以是空字符串）
func (r *Response) SetBody(body string) *Response {
	r.body = body
	r.hasBody = true
	return r
}

// Body 返回 body 以及是否设置过 body
func (r *Response) Body() (string, bool) {
	return r.body, r.hasBody
}

// Format 把响应拼成原始报文
//
// 200 的布局是固定的：状态行；若有头部，"Name: Value" 以 CRLF 连接后再跟一个 CRLF；
// 若有 body，输出 CRLF + body + CRLF；最后无条件再输出一个 CRLF。
// 这个布局和标准 HTTP 的分帧不同，但现有客户端依赖它，不能改。
func (r *Response) Format() []byte {
	if r.Status != StatusOK {
		frame, ok := fixedFrames[r.Status]
		if !ok {
			// 没有登记的状态码一律按 404 输出，不能当成 200
			frame = fixedFrames[StatusNotFound]
		}
		return []byte(frame)
	}

	var sb strings.Builder
	sb.WriteString(statusLineOK)
	if len(r.Headers) > 0 {
		// 按名字排序，保证同样的输入得到同样的字节
		keys := make([]string, 0, len(r.Headers))
		for k := range r.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, k+headerSep+r.Headers[k])
		}
		sb.WriteString(strings.Join(lines, CRLF))
		sb.WriteString(CRLF)
	}
	if r.hasBody {
		sb.WriteString(CRLF)
		sb.WriteString(r.body)
		sb.WriteString(CRLF)
	}
	sb.WriteString(CRLF)
	return []byte(sb.String())
}
