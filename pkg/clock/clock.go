package clock

import "time"

// Real возвращает текущее время в часовом поясе заведения
type Real struct {
	Location *time.Location
}

// New создает часы для зоны name ("" означает UTC)
func New(name string) (*Real, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	return &Real{Location: loc}, nil
}

func (c *Real) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

// Fixed часы с постоянным временем, для тестов
type Fixed struct {
	T time.Time
}

func (c *Fixed) Now() time.Time {
	return c.T
}
