// Package cache - пакет для работы с LRU кэшем.
// Используется для кэширования сформированных ответов (账单/汇总) по счетам;
// при изменении счета его ключи удаляются из кэша.
package cache

import (
	"container/list"
	"sync"
)

type Item struct {
	Key   string
	Value any
}

type LRU struct {
	mutex    sync.RWMutex
	capacity int
	queue    *list.List
	items    map[string]*list.Element
}

func NewLRU(capacity int) *LRU {
	return &LRU{
		capacity: capacity,
		queue:    list.New(),
		items:    make(map[string]*list.Element),
	}
}

// Add сохранить значение в кэш по заданному ключу.
func (c *LRU) Add(key string, value any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*Item).Value = value
		return
	}

	if c.queue.Len() == c.capacity {
		c.evictOldest()
	}

	element := c.queue.PushFront(&Item{
		Key:   key,
		Value: value,
	})
	c.items[key] = element
}

// Get получить значение из кэша по заданному ключу (nil, если отсутствует).
// Полная блокировка: чтение тоже передвигает элемент в начало очереди.
func (c *LRU) Get(key string) any {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[key]
	if !exists {
		return nil
	}

	c.queue.MoveToFront(element)
	return element.Value.(*Item).Value
}

// Remove удалить значение из кэша (инвалидация при изменении счета).
func (c *LRU) Remove(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if element, found := c.items[key]; found {
		c.deleteItem(element)
	}
}

// Clear удалить все значения из кэша (сброс при смене курса или комиссии:
// кэшированные ответы с пересчетом в USDT устаревают все разом).
func (c *LRU) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.queue.Init()
	c.items = make(map[string]*list.Element)
}

func (c *LRU) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}

// evictOldest вытеснение самого старого элемента.
func (c *LRU) evictOldest() {
	if element := c.queue.Back(); element != nil {
		c.deleteItem(element)
	}
}

func (c *LRU) deleteItem(element *list.Element) {
	item := c.queue.Remove(element).(*Item)
	delete(c.items, item.Key)
}
