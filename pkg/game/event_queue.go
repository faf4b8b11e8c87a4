package game

import "sync"

// EventType 宿主事件类型
type EventType int

const (
	// EventPointerMove 指针移动
	EventPointerMove EventType = iota
	// EventPointerLeave 指针离开视口
	EventPointerLeave
	// EventClick 点击或触摸
	EventClick
	// EventResize 视口尺寸变化
	EventResize
)

// String 返回事件名称（用于日志）
func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerLeave:
		return "pointer-leave"
	case EventClick:
		return "click"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event 宿主事件
type Event struct {
	Type EventType

	// 指针坐标（PointerMove、Click）
	X, Y float64

	// 新视口尺寸（Resize）
	Width, Height int
}

// EventQueue 多生产者、单消费者的事件队列
//
// 事件处理器在帧之间一次性执行完毕，帧内不会看到半更新的粒子状态。
// 生产者可以来自任意 goroutine，消费者只能是帧循环。
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// NewEventQueue 创建事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]Event, 0, 16),
	}
}

// Push 追加事件
func (q *EventQueue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Consume 按 FIFO 顺序取出所有待处理事件
func (q *EventQueue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len 返回待处理事件数
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
