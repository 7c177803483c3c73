package services

import "sync"

// maxPendingToasts bounds a visitor's queue; older toasts are dropped first
const maxPendingToasts = 5

// Toast is a notification waiting to be shown on the next render
type Toast struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

// IsError reports whether the toast uses the destructive style
func (t Toast) IsError() bool {
	return t.Kind == NotifyError
}

// ToastQueue is a Notifier that buffers notifications until the page drains them
type ToastQueue struct {
	mu     sync.Mutex
	toasts []Toast
}

func NewToastQueue() *ToastQueue {
	return &ToastQueue{}
}

// Notify queues a toast
func (q *ToastQueue) Notify(kind NotificationKind, title, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.toasts = append(q.toasts, Toast{Kind: kind, Title: title, Message: message})
	if len(q.toasts) > maxPendingToasts {
		q.toasts = q.toasts[len(q.toasts)-maxPendingToasts:]
	}
}

// Drain returns the pending toasts in arrival order and empties the queue
func (q *ToastQueue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	toasts := q.toasts
	q.toasts = nil
	return toasts
}

// Len returns the number of pending toasts
func (q *ToastQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}
