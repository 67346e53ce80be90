package client

import (
	"context"
	"net/url"
)

const employeesPath = "/employees/"

// EmployeeService maps employee operations onto single API calls.
type EmployeeService struct {
	client *Client
}

func NewEmployeeService(client *Client) *EmployeeService {
	return &EmployeeService{client: client}
}

func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	raw, err := s.client.Get(ctx, employeesPath)
	if err != nil {
		return nil, err
	}
	return decodeList[Employee](raw)
}

func (s *EmployeeService) Get(ctx context.Context, key string) (Employee, error) {
	raw, err := s.client.Get(ctx, employeesPath+url.PathEscape(key)+"/")
	if err != nil {
		return Employee{}, err
	}
	resp, err := decodeMutation[Employee](raw)
	if err != nil || resp.Data == nil {
		return Employee{}, err
	}
	return *resp.Data, nil
}

func (s *EmployeeService) Create(ctx context.Context, in NewEmployee) (CreateEmployeeResponse, error) {
	raw, err := s.client.Post(ctx, employeesPath, in)
	if err != nil {
		return CreateEmployeeResponse{}, err
	}
	return decodeMutation[Employee](raw)
}

// Delete removes an employee by server ID or employee code.
func (s *EmployeeService) Delete(ctx context.Context, key string) error {
	_, err := s.client.Delete(ctx, employeesPath+url.PathEscape(key)+"/")
	return err
}
