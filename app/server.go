package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/astaxie/beego/logs"
)

// Server 持有监听器、配置、路由和日志，替代全局变量
// 每个连接一个 goroutine，没有上限，也没有超时
type Server struct {
	cfg *Config
	mux *Mux
	log *logs.BeeLogger

	mu       sync.Mutex
	listener net.Listener
	conns    sync.WaitGroup
}

// NewServer 创建服务器并注册路由
func NewServer(cfg *Config, log *logs.BeeLogger) *Server {
	mux := NewMux(log)
	registerRoutes(mux, cfg.Directory)
	return &Server{
		cfg: cfg,
		mux: mux,
		log: log,
	}
}

// ListenAndServe 绑定 cfg.Addr 并开始服务，直到 ctx 结束
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("绑定端口失败: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve 在 listener 上循环 accept，每个连接交给独立的 goroutine
// ctx 结束时关闭 listener 并返回 nil；accept 出错只记日志，继续循环
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = listener.Close()
		case <-done:
		}
	}()

	s.log.Info("listening on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.log.Info("监听器已关闭，停止接受新连接")
				return nil
			}
			s.log.Warn("接受连接时出错: %v", err)
			continue
		}
		s.conns.Add(1)
		go func() {
			defer s.conns.Done()
			s.handleConnection(conn)
		}()
	}
}

// Addr 返回实际监听的地址，尚未开始监听时返回 nil
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Wait 等待所有正在处理的连接结束
func (s *Server) Wait() {
	s.conns.Wait()
}

// handleConnection 一个连接只处理一次请求：读一次、解析、路由、写回、关闭
// 只读一次固定大小的缓冲区，超出部分被截断
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, s.cfg.BufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		// 客户端什么都没发就断开了
		if err != nil {
			s.log.Warn("read from %s: %v", conn.RemoteAddr(), err)
		}
		return
	}

	_, err = conn.Write(s.respond(buf[:n]))
	if err != nil {
		// 写失败一般意味着客户端断开
		s.log.Warn("write to %s: %v", conn.RemoteAddr(), err)
	}
}

// respond 把原始请求字节变成响应报文，不做任何 I/O
func (s *Server) respond(raw []byte) []byte {
	req, err := ParseRequest(raw)
	if err != nil {
		s.log.Debug("parse request: %v", err)
		return errorResponse(err).Format()
	}
	s.log.Debug("%s %s", req.Method, req.Path)
	return s.mux.Serve(req).Format()
}
