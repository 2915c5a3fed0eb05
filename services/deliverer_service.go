package services

import (
	"github.com/Zane16/Foodies-Web-sub000/repository"
)

// DelivererService reads delivery statistics from the order read model.
type DelivererService struct {
	Orders *repository.OrderRepository
}

func NewDelivererService(orders *repository.OrderRepository) *DelivererService {
	return &DelivererService{Orders: orders}
}

type DelivererStats struct {
	TotalOrders   int64   `json:"totalOrders"`
	Delivered     int64   `json:"delivered"`
	InProgress    int64   `json:"inProgress"`
	TotalEarnings float64 `json:"totalEarnings"`
}

func (s *DelivererService) Stats(delivererID uint) (*DelivererStats, error) {
	st := &DelivererStats{}
	var err error

	if st.TotalOrders, err = s.Orders.CountByDeliverer(delivererID); err != nil {
		return nil, err
	}
	if st.Delivered, err = s.Orders.CountByDelivererAndStatus(delivererID, "delivered"); err != nil {
		return nil, err
	}
	if st.InProgress, err = s.Orders.CountByDelivererAndStatus(delivererID, "delivering"); err != nil {
		return nil, err
	}
	if st.TotalEarnings, err = s.Orders.SumDeliveredTotal(delivererID); err != nil {
		return nil, err
	}
	return st, nil
}
