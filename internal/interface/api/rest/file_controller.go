package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"filevault-api/internal/application/pipeline"
	"filevault-api/internal/application/ports"
	"filevault-api/internal/application/services"
	"filevault-api/internal/domain/principal"
	"filevault-api/internal/interface/api/rest/dto/file"
	"filevault-api/internal/interface/api/rest/middleware"
	"filevault-api/internal/interface/api/rest/validator"
)

// 5MB
const maxSize = int64(5 << 20)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	verifier ports.TokenVerifier,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	r.POST(RouteUpload, middleware.AuthMiddleware(verifier), fc.UploadHandler)
	r.GET(RouteFiles, middleware.AuthMiddleware(verifier), fc.ListFilesHandler)
	r.DELETE(RouteFile, middleware.AuthMiddleware(verifier), fc.DeleteFileHandler)

	return fc
}

func principalFromCtx(c *gin.Context) (principal.UUID, bool) {
	v, ok := c.Get(middleware.CtxPrincipalUUID)
	if !ok {
		return principal.UUID{}, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	principalUUID, ok := principalFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large or empty"})
		return
	}

	res, err := fc.fileService.Upload(c.Request.Context(), principalUUID, fh)
	if err != nil {
		fc.respondStageError(c, err, "upload failed")
		return
	}

	if res.CounterErr != nil {
		// the upload itself succeeded; the aggregate is stale
		fc.logger.Warn("UploadHandler: counter update failed", zap.Error(res.CounterErr))
	}

	c.JSON(http.StatusOK, file.ToResponseFile(*res.Record))
}

func (fc *FileController) ListFilesHandler(c *gin.Context) {
	principalUUID, ok := principalFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	files, err := fc.fileService.FindFiles(c.Request.Context(), principalUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get files"},
		)
		fc.logger.Error("FindFiles() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, file.ListResponse{
		Count: len(files),
		Files: file.ToResponseFiles(files),
	})
}

func (fc *FileController) DeleteFileHandler(c *gin.Context) {
	principalUUID, ok := principalFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	ok, fileUUID := validator.IsUUID(c.Param("file_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file_id must be a valid UUID"},
		)
		return
	}

	err := fc.fileService.DeleteFile(c.Request.Context(), principalUUID, fileUUID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, services.ErrNotFileOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "file is owned by another user"})
		default:
			fc.respondStageError(c, err, "delete failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// respondStageError maps a pipeline stage failure to a structured body
// carrying the error kind and the reconciliation identifiers, nothing more.
func (fc *FileController) respondStageError(c *gin.Context, err error, msg string) {
	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		body := gin.H{
			"error":   stageErr.Stage.Kind(),
			"message": msg,
		}
		if stageErr.OrphanedObjectPath != "" {
			body["orphaned_object_path"] = stageErr.OrphanedObjectPath
		}
		if stageErr.DanglingRecordID != "" {
			body["dangling_record_id"] = stageErr.DanglingRecordID
		}
		c.JSON(http.StatusInternalServerError, body)
		fc.logger.Error("pipeline stage error",
			zap.String("stage", string(stageErr.Stage)),
			zap.Error(stageErr),
		)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	fc.logger.Error(msg, zap.Error(err))
}
