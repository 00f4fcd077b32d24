package employee

import (
	"context"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Service holds no state of its own and is safe for concurrent use.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) *Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &Service{repo: repo, logger: l}
}

func (s *Service) Create(ctx context.Context, req EmployeeData) (EmployeeData, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	empl := ToRecord(req)
	// identity is always assigned by the database
	empl.ID = 0

	if err := s.repo.Create(ctx, &empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeData{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)
	return ToTransfer(empl), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (EmployeeData, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))

	empl, err := s.findExisting(ctx, id)
	if err != nil {
		return EmployeeData{}, err
	}
	return ToTransfer(*empl), nil
}

func (s *Service) GetAll(ctx context.Context) ([]EmployeeData, error) {
	s.logger.Debug("get all employees requested")

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	return ToTransferList(empls), nil
}

// Update replaces every mutable field, so an absent age or phone clears the stored value.
func (s *Service) Update(ctx context.Context, id int64, req EmployeeData) (EmployeeData, error) {
	s.logger.Debug("update employee requested", zap.Int64("employee_id", id))

	empl, err := s.findExisting(ctx, id)
	if err != nil {
		return EmployeeData{}, err
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.Age = req.Age
	empl.Phone = req.Phone

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeData{}, err
	}

	s.logger.Info("update employee success", zap.Int64("employee_id", id))
	return ToTransfer(*empl), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Debug("delete employee requested", zap.Int64("employee_id", id))

	if _, err := s.findExisting(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

func (s *Service) findExisting(ctx context.Context, id int64) (*Employee, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("find employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return nil, err
	}
	if empl == nil {
		s.logger.Warn("employee not found", zap.Int64("employee_id", id))
		return nil, employeeerrors.NotFound(id)
	}
	return empl, nil
}
