package router

import (
	"time"

	"github.com/Hjanner/2MS/internal/config"
	"github.com/Hjanner/2MS/internal/handler"
	"github.com/Hjanner/2MS/internal/middleware"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/Hjanner/2MS/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	movimientoRepo := repository.NewMovimientoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	creditoRepo := repository.NewCreditoRepository(db)
	compraRepo := repository.NewCompraRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	tasaRepo := repository.NewTasaRepository(db, rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	inventarioSvc := service.NewInventarioService(productoRepo, movimientoRepo)
	productoSvc := service.NewProductoService(productoRepo, inventarioSvc)
	ventaSvc := service.NewVentaService(ventaRepo, creditoRepo, productoRepo, clienteRepo, tasaRepo, inventarioSvc, dispatcher)
	compraSvc := service.NewCompraService(compraRepo, proveedorRepo, productoRepo, inventarioSvc)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	tasaSvc := service.NewTasaService(tasaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, ventaRepo, cfg)
	creditosH := handler.NewCreditosHandler(creditoRepo)
	comprasH := handler.NewComprasHandler(compraSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	tasasH := handler.NewTasasHandler(tasaSvc)
	healthH := handler.NewHealthHandler(db)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Health)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Ventas: cualquier rol autenticado registra y consulta
		ventas := v1.Group("/ventas", middleware.RequireRole("cajero", "administrador"))
		{
			ventas.POST("", ventasH.RegistrarVenta)
			ventas.POST("/contado", ventasH.RegistrarVentaContado)
			ventas.POST("/credito", ventasH.RegistrarVentaCredito)
			ventas.GET("", ventasH.ListarVentas)
			ventas.GET("/:id", ventasH.ObtenerVenta)
			ventas.GET("/:id/recibo", ventasH.GenerarRecibo)
		}

		creditos := v1.Group("/creditos", middleware.RequireRole("cajero", "administrador"))
		{
			creditos.GET("/:id", creditosH.ObtenerCredito)
			creditos.GET("/cliente/:ci", creditosH.ListarCreditosCliente)
		}

		compras := v1.Group("/compras", middleware.RequireRole("administrador"))
		{
			compras.POST("", comprasH.RegistrarCompra)
			compras.GET("", comprasH.ListarCompras)
			compras.GET("/:id", comprasH.ObtenerCompra)
		}

		inv := v1.Group("/inventario", middleware.RequireRole("administrador"))
		{
			inv.POST("/movimientos", inventarioH.RegistrarMovimiento)
			inv.GET("/movimientos", inventarioH.ListarMovimientos)
			inv.POST("/no-preparados", inventarioH.RegistrarNoPreparado)
			inv.GET("/consistencia/:cod", inventarioH.VerificarConsistencia)
			inv.GET("/alertas", inventarioH.AlertasStockBajo)
		}

		// Productos: lectura para todos, escritura solo administrador
		v1.GET("/productos", middleware.RequireRole("cajero", "administrador"), productosH.ListarProductos)
		v1.GET("/productos/:cod", middleware.RequireRole("cajero", "administrador"), productosH.ObtenerProducto)
		prods := v1.Group("/productos", middleware.RequireRole("administrador"))
		{
			prods.POST("", productosH.CrearProducto)
			prods.PUT("/:cod", productosH.ActualizarProducto)
			prods.DELETE("/:cod", productosH.EliminarProducto)
		}

		clientes := v1.Group("/clientes", middleware.RequireRole("cajero", "administrador"))
		{
			clientes.POST("", clientesH.CrearCliente)
			clientes.GET("", clientesH.ListarClientes)
			clientes.GET("/:ci", clientesH.ObtenerCliente)
			clientes.PUT("/:ci", clientesH.ActualizarCliente)
			clientes.DELETE("/:ci", middleware.RequireRole("administrador"), clientesH.EliminarCliente)
		}

		prov := v1.Group("/proveedores", middleware.RequireRole("administrador"))
		{
			prov.POST("", proveedoresH.CrearProveedor)
			prov.GET("", proveedoresH.ListarProveedores)
			prov.GET("/:rif", proveedoresH.ObtenerProveedor)
			prov.PUT("/:rif", proveedoresH.ActualizarProveedor)
			prov.DELETE("/:rif", proveedoresH.EliminarProveedor)
		}

		// Categorias: lectura para todos, escritura solo administrador
		v1.GET("/categorias", middleware.RequireRole("cajero", "administrador"), categoriasH.ListarCategorias)
		categorias := v1.Group("/categorias", middleware.RequireRole("administrador"))
		{
			categorias.POST("", categoriasH.CrearCategoria)
			categorias.PUT("/:id", categoriasH.ActualizarCategoria)
			categorias.DELETE("/:id", categoriasH.EliminarCategoria)
		}

		tasas := v1.Group("/tasas", middleware.RequireRole("cajero", "administrador"))
		{
			tasas.GET("", tasasH.ListarTasas)
			tasas.GET("/vigente", tasasH.TasaVigente)
			tasas.POST("", middleware.RequireRole("administrador"), tasasH.CrearTasa)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
