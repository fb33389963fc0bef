package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/customers", listCustomersHandler)
	r.GET("/customers/:id", getCustomerHandler)
	r.POST("/customers", createCustomerHandler)
	r.PUT("/customers/:id", updateCustomerHandler)
	r.DELETE("/customers/:id", deleteCustomerHandler)

	r.GET("/debts", listDebtsHandler)
	r.GET("/debts/:id", getDebtHandler)
	r.POST("/debts", createDebtHandler)
	r.PUT("/debts/:id", updateDebtHandler)
	r.DELETE("/debts/:id", deleteDebtHandler)
}

func pageableFromQuery(c *gin.Context) Pageable {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	return Pageable{Page: page, Size: size, Sort: c.Query("sort")}
}

// idParam parses the :id path segment; a non-numeric id is reported the
// same way as an unresolvable one.
func idParam(c *gin.Context, resource string) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s not found. ID: %s", resource, raw)})
		return 0, false
	}
	return uint(id), true
}

// writeDomainError maps store failures to HTTP statuses: unresolved
// references are client errors (400), unique-attribute collisions are
// conflicts (409), anything else is a 500 with a fixed message.
func writeDomainError(c *gin.Context, err error) {
	var nf *NotFoundError
	var ex *ExistsError
	switch {
	case errors.As(err, &nf):
		log.Printf("not found: %v", nf)
		c.JSON(http.StatusBadRequest, gin.H{"error": nf.Error()})
	case errors.As(err, &ex):
		log.Printf("conflict: %v", ex)
		c.JSON(http.StatusConflict, gin.H{"error": ex.Error()})
	default:
		log.Printf("store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
	}
}

// bindForm parses the request body and runs form validation; both phases
// respond on failure so handlers just bail out.
func bindForm(c *gin.Context, form interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error occurred. Cannot deserialize HTTP message"})
		return false
	}
	if err := form.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func listCustomersHandler(c *gin.Context) {
	items, err := customers.List(pageableFromQuery(c))
	if err != nil {
		log.Printf("list customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	data := make([]CustomerData, 0, len(items))
	for _, it := range items {
		data = append(data, toCustomerData(it))
	}
	c.JSON(http.StatusOK, data)
}

func getCustomerHandler(c *gin.Context) {
	id, ok := idParam(c, "Customer")
	if !ok {
		return
	}
	cust, err := customers.GetByID(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerData(*cust))
}

func createCustomerHandler(c *gin.Context) {
	var form CustomerForm
	if !bindForm(c, &form) {
		return
	}
	cust, err := customers.Create(form)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/customers/%d", cust.ID))
	c.JSON(http.StatusCreated, toCustomerData(*cust))
}

func updateCustomerHandler(c *gin.Context) {
	id, ok := idParam(c, "Customer")
	if !ok {
		return
	}
	var form CustomerForm
	if !bindForm(c, &form) {
		return
	}
	cust, err := customers.Update(id, form)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerData(*cust))
}

func deleteCustomerHandler(c *gin.Context) {
	id, ok := idParam(c, "Customer")
	if !ok {
		return
	}
	if err := customers.Delete(id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func listDebtsHandler(c *gin.Context) {
	items, err := debts.List(pageableFromQuery(c))
	if err != nil {
		log.Printf("list debts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	data := make([]DebtData, 0, len(items))
	for _, it := range items {
		data = append(data, toDebtData(it))
	}
	c.JSON(http.StatusOK, data)
}

func getDebtHandler(c *gin.Context) {
	id, ok := idParam(c, "Debt")
	if !ok {
		return
	}
	d, err := debts.GetByID(id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDebtData(*d))
}

func createDebtHandler(c *gin.Context) {
	var form DebtForm
	if !bindForm(c, &form) {
		return
	}
	d, err := debts.Create(form)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/debts/%d", d.ID))
	c.JSON(http.StatusCreated, toDebtData(*d))
}

func updateDebtHandler(c *gin.Context) {
	id, ok := idParam(c, "Debt")
	if !ok {
		return
	}
	var form DebtForm
	if !bindForm(c, &form) {
		return
	}
	d, err := debts.Update(id, form)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDebtData(*d))
}

func deleteDebtHandler(c *gin.Context) {
	id, ok := idParam(c, "Debt")
	if !ok {
		return
	}
	if err := debts.Delete(id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
