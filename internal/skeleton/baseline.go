package skeleton

// Baseline returns the mandatory project skeleton. The tree shape is fixed; flags
// only select fragments inside index.js and App.js.
func Baseline(flags Flags) Template {
	return Template{
		File{Name: "index.js", Content: Resolve(indexJS, flags)},
		File{Name: "App.js", Content: Resolve(appJS, flags)},
		File{Name: "App.css", Content: ""},
		File{Name: "apiService.js", Content: apiServiceJS},
		Dir{Name: "components", Children: Template{
			File{Name: "PublicNavbar.js", Content: publicNavbarJS},
			File{Name: "SideMenu.js", Content: sideMenuJS},
		}},
		Dir{Name: "routes", Children: Template{
			File{Name: "AdminLayout.js", Content: adminLayoutJS},
			File{Name: "PublicLayout.js", Content: publicLayoutJS},
			File{Name: "PrivateRoute.js", Content: privateRouteJS},
		}},
		Dir{Name: "pages", Children: Template{
			File{Name: "HomePage.js", Content: homePageJS},
			File{Name: "NotFoundPage.js", Content: notFoundPageJS},
		}},
	}
}

var indexJS = []Fragment{
	Always(`import React from "react";
import ReactDOM from "react-dom";
import App from "./App";
`),
	If(FeatureRedux, `import { Provider } from "react-redux";
import store from "./redux/store";
`),
	Always(`
ReactDOM.render(
`),
	IfElse(FeatureRedux, `  <Provider store={store}>
    <App />
  </Provider>,
`, `  <App />,
`),
	Always(`  document.getElementById("root")
);
`),
}

var appJS = []Fragment{
	Always(`import React from "react";
import "./App.css";
import "bootstrap/dist/css/bootstrap.min.css";
import { BrowserRouter as Router, Route, Switch } from "react-router-dom";
import AdminLayout from "./routes/AdminLayout";
import PublicLayout from "./routes/PublicLayout";
import PrivateRoute from "./routes/PrivateRoute";
`),
	If(FeatureToastify, `import AlertMsg from "./components/AlertMsg";
`),
	Always(`
function App() {
  return (
    <Router>
`),
	If(FeatureToastify, `      <AlertMsg />
`),
	Always(`      <Switch>
        <PrivateRoute path="/admin" component={AdminLayout} />
        <Route path="/" component={PublicLayout} />
      </Switch>
    </Router>
  );
}

export default App;
`),
}

const apiServiceJS = `import axios from "axios";

const api = axios.create({
  baseURL: process.env.REACT_APP_BACKEND_API,
  headers: {
    "Content-Type": "application/json",
  },
});

/**
 * console.log all requests and responses
 */
api.interceptors.request.use(
  (request) => {
    console.log("Starting Request", request);
    return request;
  },
  function (error) {
    console.log("REQUEST ERROR", error);
  }
);

api.interceptors.response.use(
  (response) => {
    console.log("Response:", response);
    return response;
  },
  function (error) {
    error = error.response.data;
    console.log("RESPONSE ERROR", error);

    return Promise.reject(error);
  }
);

export default api;
`

const publicNavbarJS = `import React from "react";
import { Navbar, Nav } from "react-bootstrap";

const PublicNavbar = () => {
  return (
    <Navbar bg="light" expand="lg">
      <Navbar.Brand>
        <img src={""} alt="CoderSchool" width="200px" />
      </Navbar.Brand>
      <Nav className="mr-auto">
        <Nav.Link href="#home">Home</Nav.Link>
        <Nav.Link href="#features">Features</Nav.Link>
      </Nav>
      <Nav>
        <a href="#your_github_repo_link" target="_blank">
          <img src={""} alt="Github" width="32px" />
        </a>
      </Nav>
    </Navbar>
  );
};

export default PublicNavbar;
`

const sideMenuJS = `import React from "react";
import { Nav } from "react-bootstrap";

const SideMenu = () => {
  return (
    <Nav className="col-md-3 col-lg-2 d-md-block bg-light sidebar collapse">
      <div className="sidebar-sticky pt-3"></div>
    </Nav>
  );
};

export default SideMenu;
`

const adminLayoutJS = `import React from "react";
import PublicNavbar from "../components/PublicNavbar";
import SideMenu from "../components/SideMenu";
import { Container, Row, Col } from "react-bootstrap";
import { Route, Switch } from "react-router-dom";

import NotFoundPage from "../pages/NotFoundPage";

const AdminLayout = () => {
  return (
    <>
      <PublicNavbar />
      <Container fluid>
        <Row>
          <Col md={3} lg={2}>
            <SideMenu />
          </Col>
          <Col md={9} lg={10}>
            <Switch>
              <Route component={NotFoundPage} />
            </Switch>
          </Col>
        </Row>
      </Container>
    </>
  );
};

export default AdminLayout;
`

const publicLayoutJS = `import React from "react";
import { Container } from "react-bootstrap";
import { Route, Switch } from "react-router-dom";
import PublicNavbar from "../components/PublicNavbar";
import HomePage from "../pages/HomePage";
import NotFoundPage from "../pages/NotFoundPage";

const PublicLayout = () => {
  return (
    <>
      <PublicNavbar />
      <Container>
        <Switch>
          <Route exact path="/" component={HomePage} />
          <Route component={NotFoundPage} />
        </Switch>
      </Container>
    </>
  );
};

export default PublicLayout;
`

const privateRouteJS = `import React from "react";
import { Route, Redirect } from "react-router-dom";

const PrivateRoute = ({ ...rest }) => {
  const isAuthenticated = true;
  if (isAuthenticated) return <Route {...rest} />;
  delete rest.component;
  return <Route {...rest} render={(props) => <Redirect to="/login" />} />;
};

export default PrivateRoute;
`

const homePageJS = `import React from "react";

import { Container } from "react-bootstrap";

const HomePage = () => {
  return (
    <Container>
      <h1>Home Page</h1>
    </Container>
  );
};

export default HomePage;
`

const notFoundPageJS = `import React from "react";
import { Container, Row, Col } from "react-bootstrap";

const NotFoundPage = () => {
  return (
    <Container>
      <Row>
        <Col md={{ span: 6, offset: 3 }}>
          <h1>404</h1>
          <p>The page you are looking for does not exist.</p>
        </Col>
      </Row>
    </Container>
  );
};

export default NotFoundPage;
`
