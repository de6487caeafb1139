package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cristianomarianoufsc-ops/vexel.2/internal/core/ports"
)

// TaskHandler serves the tasks procedures.
type TaskHandler struct {
	repo ports.TaskRepository
}

func NewTaskHandler(repo ports.TaskRepository) *TaskHandler {
	return &TaskHandler{repo: repo}
}

// List handles tasks.list.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   taskResponse
// @Router       /api/rpc/tasks.list [get]
func (h *TaskHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	tasks := h.repo.ListTasks(c.Request().Context(), user.ID)
	return c.JSON(http.StatusOK, mapAll(tasks, toTaskResponse))
}

// Create handles tasks.create. Status defaults to pending and priority to
// medium.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/rpc/tasks.create [post]
func (h *TaskHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req createTaskRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	task, err := h.repo.CreateTask(c.Request().Context(), user.ID, toTaskInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(*task))
}

// Update handles tasks.update.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      updateTaskRequest  true  "Task"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/tasks.update [post]
func (h *TaskHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req updateTaskRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.UpdateTask(c.Request().Context(), req.ID, user.ID, toTaskPatch(req))
	return mutated(c, n, err)
}

// Toggle handles tasks.toggle. Without a status the task flips between
// pending and completed.
//
// @Summary      Toggle a task status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      toggleTaskRequest  true  "Task id and optional status"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/tasks.toggle [post]
func (h *TaskHandler) Toggle(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req toggleTaskRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.ToggleTask(c.Request().Context(), req.ID, user.ID, req.Status)
	return mutated(c, n, err)
}

// Delete handles tasks.delete.
//
// @Summary      Delete a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      idRequest  true  "Task id"
// @Success      200   {object}  mutationResponse
// @Router       /api/rpc/tasks.delete [post]
func (h *TaskHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req idRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}

	n, err := h.repo.DeleteTask(c.Request().Context(), req.ID, user.ID)
	return mutated(c, n, err)
}
